package xcf

import (
	"fmt"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
)

// PropertyID identifies an entry in the self-describing property stream
// shared by Document, Layer, and Channel.
type PropertyID uint32

// The property ids are exhaustive for the formats this package supports;
// see the wire table in the design documentation for their payloads.
const (
	PropEnd               PropertyID = 0
	PropColormap          PropertyID = 1
	PropActiveLayer       PropertyID = 2
	PropActiveChannel     PropertyID = 3
	PropSelection         PropertyID = 4
	PropFloatingSelection PropertyID = 5
	PropOpacity           PropertyID = 6
	PropMode              PropertyID = 7
	PropVisible           PropertyID = 8
	PropLinked            PropertyID = 9
	PropLockAlpha         PropertyID = 10
	PropApplyMask         PropertyID = 11
	PropEditMask          PropertyID = 12
	PropShowMask          PropertyID = 13
	PropShowMasked        PropertyID = 14
	PropOffsets           PropertyID = 15
	PropColor             PropertyID = 16
	PropCompression       PropertyID = 17
	PropGuides            PropertyID = 18
	PropResolution        PropertyID = 19
	PropTattoo            PropertyID = 20
	PropParasites         PropertyID = 21
	PropUnit              PropertyID = 22
	PropPaths             PropertyID = 23
	PropUserUnit          PropertyID = 24
	PropVectors           PropertyID = 25
	PropTextLayerFlags    PropertyID = 26
	PropOldSamplePoints   PropertyID = 27
	PropLockContent       PropertyID = 28
	PropGroupItem         PropertyID = 29
	PropItemPath          PropertyID = 30
	PropGroupItemFlags    PropertyID = 31
	PropLockPosition      PropertyID = 32
	PropFloatOpacity      PropertyID = 33
	PropColorTag          PropertyID = 34
	PropCompositeMode     PropertyID = 35
	PropCompositeSpace    PropertyID = 36
	PropBlendSpace        PropertyID = 37
	PropFloatColor        PropertyID = 38
	PropSamplePoints      PropertyID = 39

	propNumIDs = 40
)

// CompressionMode is the on-disk PROP_COMPRESSION payload, selecting the
// tile codec discipline for an entire document.
type CompressionMode uint8

const (
	CompressionNone CompressionMode = 0
	CompressionRLE  CompressionMode = 1
	CompressionZlib CompressionMode = 2
	// CompressionFractal is recognized but was never shipped; decoding
	// or requesting it fails with ErrUnsupportedCompression.
	CompressionFractal CompressionMode = 3
)

// Unit is the PROP_UNIT payload.
type Unit uint32

const (
	UnitInches Unit = iota
	UnitMillimeters
	UnitPoints
	UnitPicas
)

// ColorTag is the PROP_COLOR_TAG payload, a UI label GIMP draws on a
// layer row; it carries no rendering meaning.
type ColorTag uint32

const (
	ColorTagNone ColorTag = iota
	ColorTagBlue
	ColorTagGreen
	ColorTagYellow
	ColorTagOrange
	ColorTagBrown
	ColorTagRed
	ColorTagViolet
	ColorTagGray
)

// RGB8 is an 8-bit-per-channel color, used by PROP_COLOR.
type RGB8 struct{ R, G, B uint8 }

// RGB32F is a floating point color, used by PROP_FLOAT_COLOR.
type RGB32F struct{ R, G, B float32 }

// Guide is one entry of PROP_GUIDES: a ruler guide at a fixed canvas
// position.
type Guide struct {
	Position    int32
	Orientation GuideOrientation
}

type GuideOrientation uint8

const (
	GuideHorizontal GuideOrientation = 1
	GuideVertical   GuideOrientation = 2
)

// Point2I is an integer 2D point, used by PROP_SAMPLE_POINTS.
type Point2I struct{ X, Y int32 }

// UserUnit is the PROP_USER_UNIT payload, a user-defined measurement
// unit definition.
type UserUnit struct {
	Factor       float32
	Digits       uint32
	ID           string
	Symbol       string
	Abbreviation string
	Singular     string
	Plural       string
}

// Property is the tagged-variant wire representation of one property
// stream entry. Concrete types below enumerate ids 1..39; UnknownProperty
// carries anything this package does not recognize, enabling a
// forward-compatible non-strict decode mode.
type Property interface {
	PropertyID() PropertyID
}

// UnknownProperty preserves an unrecognized property's raw payload so
// that non-strict decoding can skip it without losing information about
// its presence.
type UnknownProperty struct {
	ID      uint32
	Payload []byte
}

func (p UnknownProperty) PropertyID() PropertyID { return PropertyID(p.ID) }

// PropertyBag is an ordered, typed, terminator-marked stream of metadata
// entries shared by Document, Layer, and Channel. Rather than keeping
// callers in wire-shaped Property values, it exposes the decoded state as
// named fields — the shape every consumer in this package actually wants
// — while still round-tripping through the tagged Property variants
// during decode/encode.
type PropertyBag struct {
	Selected            bool
	IsSelection         bool
	SelectionAttachedTo *uint32
	OpacityInt          *uint32
	OpacityFloat        *float32
	BlendMode           *uint32
	Visible             *bool
	Linked              *bool
	LockAlpha           *bool
	ApplyMask           *bool
	EditMask            *bool
	ShowMask            *bool
	ShowMasked          *bool
	OffsetX, OffsetY    *int32
	Color               *RGB8
	FloatColor          *RGB32F
	Compression         *CompressionMode
	Guides              []Guide
	ResolutionX         *float32
	ResolutionY         *float32
	Tattoo              *uint32
	Parasites           []*Parasite
	Unit                *Unit
	LegacyPaths         []byte // raw PROP_PATHS payload, preserved verbatim
	UserUnit            *UserUnit
	VectorsVersion      uint32
	ActiveVectorIndex   uint32
	Vectors             []*Vector
	TextLayerFlags      *uint32
	Locked              *bool
	IsGroup             bool
	ItemPath            []uint32
	GroupItemFlags      *uint32
	PositionLocked      *bool
	ColorTag            *ColorTag
	CompositeMode       *int32
	CompositeSpace      *int32
	BlendSpace          *uint32
	SamplePoints        []Point2I
	Colormap            []RGB8
}

// Expanded reports whether a group layer's disclosure triangle is open,
// bit 0 of PROP_GROUP_ITEM_FLAGS.
func (b *PropertyBag) Expanded() bool {
	return b.GroupItemFlags != nil && (*b.GroupItemFlags)&1 != 0
}

// SetExpanded sets or clears bit 0 of PROP_GROUP_ITEM_FLAGS, allocating
// the field if necessary.
func (b *PropertyBag) SetExpanded(expanded bool) {
	var flags uint32
	if b.GroupItemFlags != nil {
		flags = *b.GroupItemFlags
	}
	if expanded {
		flags |= 1
	} else {
		flags &^= 1
	}
	b.GroupItemFlags = &flags
}

// decodePropertyPayload turns one property id and payload into its
// concrete tagged type. Strict mode rejects unrecognized ids per the
// "UnknownProperty(id)" entry in the error taxonomy; non-strict mode
// returns an UnknownProperty carrying the raw bytes instead.
func decodePropertyPayload(id uint32, payload []byte, strict bool, offset int) (Property, error) {
	cur := binutil.NewReader(payload)
	switch PropertyID(id) {
	case PropColormap:
		n, err := cur.ReadU32()
		if err != nil {
			return nil, err
		}
		colors := make([]RGB8, 0, n)
		for i := uint32(0); i < n; i++ {
			r, err := cur.ReadU8()
			if err != nil {
				return nil, err
			}
			g, err := cur.ReadU8()
			if err != nil {
				return nil, err
			}
			b, err := cur.ReadU8()
			if err != nil {
				return nil, err
			}
			colors = append(colors, RGB8{r, g, b})
		}
		return ColormapProperty{Colors: colors}, nil
	case PropActiveLayer, PropActiveChannel, PropSelection, PropGroupItem:
		return FlagProperty{id: PropertyID(id)}, nil
	case PropFloatingSelection:
		v, err := cur.ReadU32()
		return FloatingSelectionProperty{AttachedTo: v}, err
	case PropOpacity:
		v, err := cur.ReadU32()
		return U32Property{id: PropOpacity, Value: v}, err
	case PropMode:
		v, err := cur.ReadU32()
		return U32Property{id: PropMode, Value: v}, err
	case PropVisible:
		v, err := cur.ReadBool32()
		return BoolProperty{id: PropVisible, Value: v}, err
	case PropLinked:
		v, err := cur.ReadBool32()
		return BoolProperty{id: PropLinked, Value: v}, err
	case PropLockAlpha:
		v, err := cur.ReadBool32()
		return BoolProperty{id: PropLockAlpha, Value: v}, err
	case PropApplyMask:
		v, err := cur.ReadBool32()
		return BoolProperty{id: PropApplyMask, Value: v}, err
	case PropEditMask:
		v, err := cur.ReadBool32()
		return BoolProperty{id: PropEditMask, Value: v}, err
	case PropShowMask:
		v, err := cur.ReadBool32()
		return BoolProperty{id: PropShowMask, Value: v}, err
	case PropShowMasked:
		v, err := cur.ReadBool32()
		return BoolProperty{id: PropShowMasked, Value: v}, err
	case PropOffsets:
		x, err := cur.ReadI32()
		if err != nil {
			return nil, err
		}
		y, err := cur.ReadI32()
		return OffsetsProperty{X: x, Y: y}, err
	case PropColor:
		r, err := cur.ReadU8()
		if err != nil {
			return nil, err
		}
		g, err := cur.ReadU8()
		if err != nil {
			return nil, err
		}
		b, err := cur.ReadU8()
		return ColorProperty{R: r, G: g, B: b}, err
	case PropCompression:
		v, err := cur.ReadU8()
		return CompressionProperty{Mode: CompressionMode(v)}, err
	case PropGuides:
		var guides []Guide
		for cur.Remaining() > 0 {
			pos, err := cur.ReadI32()
			if err != nil {
				return nil, err
			}
			orient, err := cur.ReadU8()
			if err != nil {
				return nil, err
			}
			guides = append(guides, Guide{Position: pos, Orientation: GuideOrientation(orient)})
		}
		return GuidesProperty{Guides: guides}, nil
	case PropResolution:
		x, err := cur.ReadF32()
		if err != nil {
			return nil, err
		}
		y, err := cur.ReadF32()
		return ResolutionProperty{X: x, Y: y}, err
	case PropTattoo:
		v, err := cur.ReadU32()
		return U32Property{id: PropTattoo, Value: v}, err
	case PropParasites:
		var parasites []*Parasite
		for cur.Remaining() > 0 {
			p := &Parasite{}
			if err := p.decode(cur); err != nil {
				return nil, err
			}
			parasites = append(parasites, p)
		}
		return ParasitesProperty{Parasites: parasites}, nil
	case PropUnit:
		v, err := cur.ReadU32()
		return U32Property{id: PropUnit, Value: v}, err
	case PropPaths:
		return PathsProperty{Raw: append([]byte(nil), payload...)}, nil
	case PropUserUnit:
		u := UserUnit{}
		var err error
		if u.Factor, err = cur.ReadF32(); err != nil {
			return nil, err
		}
		if u.Digits, err = cur.ReadU32(); err != nil {
			return nil, err
		}
		if u.ID, err = cur.ReadPascalString(); err != nil {
			return nil, err
		}
		if u.Symbol, err = cur.ReadPascalString(); err != nil {
			return nil, err
		}
		if u.Abbreviation, err = cur.ReadPascalString(); err != nil {
			return nil, err
		}
		if u.Singular, err = cur.ReadPascalString(); err != nil {
			return nil, err
		}
		if u.Plural, err = cur.ReadPascalString(); err != nil {
			return nil, err
		}
		return UserUnitProperty{Unit: u}, nil
	case PropVectors:
		version, err := cur.ReadU32()
		if err != nil {
			return nil, err
		}
		active, err := cur.ReadU32()
		if err != nil {
			return nil, err
		}
		n, err := cur.ReadU32()
		if err != nil {
			return nil, err
		}
		vectors := make([]*Vector, 0, n)
		for i := uint32(0); i < n; i++ {
			v := &Vector{}
			if err := v.decode(cur); err != nil {
				return nil, err
			}
			vectors = append(vectors, v)
		}
		return VectorsProperty{Version: version, ActiveIndex: active, Vectors: vectors}, nil
	case PropTextLayerFlags:
		v, err := cur.ReadU32()
		return U32Property{id: PropTextLayerFlags, Value: v}, err
	case PropOldSamplePoints:
		return nil, errAt(ErrUnsupportedFeature, offset, "old sample points record")
	case PropLockContent:
		v, err := cur.ReadBool32()
		return BoolProperty{id: PropLockContent, Value: v}, err
	case PropItemPath:
		var path []uint32
		for cur.Remaining() > 0 {
			v, err := cur.ReadU32()
			if err != nil {
				return nil, err
			}
			path = append(path, v)
		}
		return ItemPathProperty{Path: path}, nil
	case PropGroupItemFlags:
		v, err := cur.ReadU32()
		return U32Property{id: PropGroupItemFlags, Value: v}, err
	case PropLockPosition:
		v, err := cur.ReadBool32()
		return BoolProperty{id: PropLockPosition, Value: v}, err
	case PropFloatOpacity:
		v, err := cur.ReadF32()
		return F32Property{id: PropFloatOpacity, Value: v}, err
	case PropColorTag:
		v, err := cur.ReadU32()
		return U32Property{id: PropColorTag, Value: v}, err
	case PropCompositeMode:
		v, err := cur.ReadI32()
		return I32Property{id: PropCompositeMode, Value: v}, err
	case PropCompositeSpace:
		v, err := cur.ReadI32()
		return I32Property{id: PropCompositeSpace, Value: v}, err
	case PropBlendSpace:
		v, err := cur.ReadU32()
		return U32Property{id: PropBlendSpace, Value: v}, err
	case PropFloatColor:
		r, err := cur.ReadF32()
		if err != nil {
			return nil, err
		}
		g, err := cur.ReadF32()
		if err != nil {
			return nil, err
		}
		b, err := cur.ReadF32()
		return FloatColorProperty{R: r, G: g, B: b}, err
	case PropSamplePoints:
		var points []Point2I
		for cur.Remaining() > 0 {
			x, err := cur.ReadI32()
			if err != nil {
				return nil, err
			}
			y, err := cur.ReadI32()
			if err != nil {
				return nil, err
			}
			points = append(points, Point2I{X: x, Y: y})
		}
		return SamplePointsProperty{Points: points}, nil
	default:
		if strict {
			return nil, errAt(ErrUnknownProperty, offset, fmt.Sprintf("id %d", id))
		}
		return UnknownProperty{ID: id, Payload: append([]byte(nil), payload...)}, nil
	}
}

// Generic single-value property wrappers, used where the payload shape
// (flag / bool32 / u32 / i32 / f32) is shared by several ids; the id
// itself still round-trips so encode knows which wire id to emit.
type FlagProperty struct{ id PropertyID }

func (p FlagProperty) PropertyID() PropertyID { return p.id }

type BoolProperty struct {
	id    PropertyID
	Value bool
}

func (p BoolProperty) PropertyID() PropertyID { return p.id }

type U32Property struct {
	id    PropertyID
	Value uint32
}

func (p U32Property) PropertyID() PropertyID { return p.id }

type I32Property struct {
	id    PropertyID
	Value int32
}

func (p I32Property) PropertyID() PropertyID { return p.id }

type F32Property struct {
	id    PropertyID
	Value float32
}

func (p F32Property) PropertyID() PropertyID { return p.id }

type ColormapProperty struct{ Colors []RGB8 }

func (ColormapProperty) PropertyID() PropertyID { return PropColormap }

type FloatingSelectionProperty struct{ AttachedTo uint32 }

func (FloatingSelectionProperty) PropertyID() PropertyID { return PropFloatingSelection }

type OffsetsProperty struct{ X, Y int32 }

func (OffsetsProperty) PropertyID() PropertyID { return PropOffsets }

type ColorProperty struct{ R, G, B uint8 }

func (ColorProperty) PropertyID() PropertyID { return PropColor }

type FloatColorProperty struct{ R, G, B float32 }

func (FloatColorProperty) PropertyID() PropertyID { return PropFloatColor }

type CompressionProperty struct{ Mode CompressionMode }

func (CompressionProperty) PropertyID() PropertyID { return PropCompression }

type GuidesProperty struct{ Guides []Guide }

func (GuidesProperty) PropertyID() PropertyID { return PropGuides }

type ResolutionProperty struct{ X, Y float32 }

func (ResolutionProperty) PropertyID() PropertyID { return PropResolution }

type ParasitesProperty struct{ Parasites []*Parasite }

func (ParasitesProperty) PropertyID() PropertyID { return PropParasites }

type PathsProperty struct{ Raw []byte }

func (PathsProperty) PropertyID() PropertyID { return PropPaths }

type UserUnitProperty struct{ Unit UserUnit }

func (UserUnitProperty) PropertyID() PropertyID { return PropUserUnit }

type VectorsProperty struct {
	Version, ActiveIndex uint32
	Vectors              []*Vector
}

func (VectorsProperty) PropertyID() PropertyID { return PropVectors }

type ItemPathProperty struct{ Path []uint32 }

func (ItemPathProperty) PropertyID() PropertyID { return PropItemPath }

type SamplePointsProperty struct{ Points []Point2I }

func (SamplePointsProperty) PropertyID() PropertyID { return PropSamplePoints }

// apply folds one decoded Property into the bag's named fields.
func (b *PropertyBag) apply(p Property) {
	switch v := p.(type) {
	case ColormapProperty:
		b.Colormap = v.Colors
	case FlagProperty:
		switch v.id {
		case PropActiveLayer, PropActiveChannel:
			b.Selected = true
		case PropSelection:
			b.IsSelection = true
		case PropGroupItem:
			b.IsGroup = true
		}
	case FloatingSelectionProperty:
		attached := v.AttachedTo
		b.SelectionAttachedTo = &attached
	case U32Property:
		val := v.Value
		switch v.id {
		case PropOpacity:
			b.OpacityInt = &val
		case PropMode:
			b.BlendMode = &val
		case PropTattoo:
			b.Tattoo = &val
		case PropUnit:
			u := Unit(val)
			b.Unit = &u
		case PropTextLayerFlags:
			b.TextLayerFlags = &val
		case PropGroupItemFlags:
			b.GroupItemFlags = &val
		case PropColorTag:
			ct := ColorTag(val)
			b.ColorTag = &ct
		case PropBlendSpace:
			b.BlendSpace = &val
		}
	case I32Property:
		val := v.Value
		switch v.id {
		case PropCompositeMode:
			b.CompositeMode = &val
		case PropCompositeSpace:
			b.CompositeSpace = &val
		}
	case F32Property:
		if v.id == PropFloatOpacity {
			val := v.Value
			b.OpacityFloat = &val
		}
	case BoolProperty:
		val := v.Value
		switch v.id {
		case PropVisible:
			b.Visible = &val
		case PropLinked:
			b.Linked = &val
		case PropLockAlpha:
			b.LockAlpha = &val
		case PropApplyMask:
			b.ApplyMask = &val
		case PropEditMask:
			b.EditMask = &val
		case PropShowMask:
			b.ShowMask = &val
		case PropShowMasked:
			b.ShowMasked = &val
		case PropLockContent:
			b.Locked = &val
		case PropLockPosition:
			b.PositionLocked = &val
		}
	case OffsetsProperty:
		x, y := v.X, v.Y
		b.OffsetX, b.OffsetY = &x, &y
	case ColorProperty:
		b.Color = &RGB8{v.R, v.G, v.B}
	case FloatColorProperty:
		b.FloatColor = &RGB32F{v.R, v.G, v.B}
	case CompressionProperty:
		mode := v.Mode
		b.Compression = &mode
	case GuidesProperty:
		b.Guides = v.Guides
	case ResolutionProperty:
		x, y := v.X, v.Y
		b.ResolutionX, b.ResolutionY = &x, &y
	case ParasitesProperty:
		b.Parasites = v.Parasites
	case PathsProperty:
		b.LegacyPaths = v.Raw
	case UserUnitProperty:
		u := v.Unit
		b.UserUnit = &u
	case VectorsProperty:
		b.VectorsVersion = v.Version
		b.ActiveVectorIndex = v.ActiveIndex
		b.Vectors = v.Vectors
	case ItemPathProperty:
		b.ItemPath = v.Path
	case SamplePointsProperty:
		b.SamplePoints = v.Points
	case UnknownProperty:
		// forward-compat: silently ignored field-wise, nothing to
		// carry into the named-field view.
	}
}

// DecodePropertyBag reads a property stream until PROP_END (or the
// buffer is exhausted) and folds every recognized entry into a
// PropertyBag. strict controls whether an unrecognized id is fatal.
func DecodePropertyBag(cur *binutil.Cursor, strict bool) (*PropertyBag, error) {
	bag := &PropertyBag{}
	for {
		if cur.Remaining() == 0 {
			break
		}
		entryOffset := cur.Pos
		id, err := cur.ReadU32()
		if err != nil {
			return nil, err
		}
		length, err := cur.ReadU32()
		if err != nil {
			return nil, err
		}
		if PropertyID(id) == PropEnd {
			break
		}
		payload, err := cur.ReadBytes(int(length))
		if err != nil {
			return nil, err
		}
		prop, err := decodePropertyPayload(id, payload, strict, entryOffset)
		if err != nil {
			return nil, err
		}
		if prop != nil {
			bag.apply(prop)
		}
	}
	return bag, nil
}

// encodeOne renders a single Property's wire entry (id, length, payload)
// into cur.
func encodeOne(cur *binutil.Cursor, p Property) {
	payload := binutil.NewWriter()
	switch v := p.(type) {
	case ColormapProperty:
		payload.WriteU32(uint32(len(v.Colors)))
		for _, c := range v.Colors {
			payload.WriteU8(c.R)
			payload.WriteU8(c.G)
			payload.WriteU8(c.B)
		}
	case FlagProperty:
		// empty payload
	case FloatingSelectionProperty:
		payload.WriteU32(v.AttachedTo)
	case U32Property:
		payload.WriteU32(v.Value)
	case I32Property:
		payload.WriteI32(v.Value)
	case F32Property:
		payload.WriteF32(v.Value)
	case BoolProperty:
		payload.WriteBool32(v.Value)
	case OffsetsProperty:
		payload.WriteI32(v.X)
		payload.WriteI32(v.Y)
	case ColorProperty:
		payload.WriteU8(v.R)
		payload.WriteU8(v.G)
		payload.WriteU8(v.B)
	case FloatColorProperty:
		payload.WriteF32(v.R)
		payload.WriteF32(v.G)
		payload.WriteF32(v.B)
	case CompressionProperty:
		payload.WriteU8(uint8(v.Mode))
	case GuidesProperty:
		for _, g := range v.Guides {
			payload.WriteI32(g.Position)
			payload.WriteU8(uint8(g.Orientation))
		}
	case ResolutionProperty:
		payload.WriteF32(v.X)
		payload.WriteF32(v.Y)
	case ParasitesProperty:
		for _, p := range v.Parasites {
			p.encode(payload)
		}
	case PathsProperty:
		payload.WriteBytes(v.Raw)
	case UserUnitProperty:
		payload.WriteF32(v.Unit.Factor)
		payload.WriteU32(v.Unit.Digits)
		payload.WritePascalString(v.Unit.ID)
		payload.WritePascalString(v.Unit.Symbol)
		payload.WritePascalString(v.Unit.Abbreviation)
		payload.WritePascalString(v.Unit.Singular)
		payload.WritePascalString(v.Unit.Plural)
	case VectorsProperty:
		payload.WriteU32(v.Version)
		payload.WriteU32(v.ActiveIndex)
		payload.WriteU32(uint32(len(v.Vectors)))
		for _, vec := range v.Vectors {
			vec.encode(payload)
		}
	case ItemPathProperty:
		for _, p := range v.Path {
			payload.WriteU32(p)
		}
	case SamplePointsProperty:
		for _, pt := range v.Points {
			payload.WriteI32(pt.X)
			payload.WriteI32(pt.Y)
		}
	case UnknownProperty:
		payload.WriteBytes(v.Payload)
	}
	cur.WriteU32(uint32(p.PropertyID()))
	cur.WriteU32(uint32(len(payload.Data)))
	cur.WriteBytes(payload.Data)
}

// Encode renders the bag back to its canonical wire form: properties in
// fixed id order 1..39, each emitted only if it differs from its
// (unset) default, followed by the PROP_END terminator.
func (b *PropertyBag) Encode() []byte {
	cur := binutil.NewWriter()
	for id := PropertyID(1); id < propNumIDs; id++ {
		if prop, ok := b.propertyFor(id); ok {
			encodeOne(cur, prop)
		}
	}
	cur.WriteU32(uint32(PropEnd))
	cur.WriteU32(0)
	return cur.Data
}

// propertyFor reconstructs the wire-shaped Property for id from the
// bag's named fields, reporting ok=false when the property should be
// omitted (unset / equal to its default).
func (b *PropertyBag) propertyFor(id PropertyID) (Property, bool) {
	switch id {
	case PropColormap:
		if len(b.Colormap) == 0 {
			return nil, false
		}
		return ColormapProperty{Colors: b.Colormap}, true
	case PropActiveLayer, PropActiveChannel:
		if !b.Selected {
			return nil, false
		}
		return FlagProperty{id: id}, true
	case PropSelection:
		if !b.IsSelection {
			return nil, false
		}
		return FlagProperty{id: id}, true
	case PropGroupItem:
		if !b.IsGroup {
			return nil, false
		}
		return FlagProperty{id: id}, true
	case PropFloatingSelection:
		if b.SelectionAttachedTo == nil {
			return nil, false
		}
		return FloatingSelectionProperty{AttachedTo: *b.SelectionAttachedTo}, true
	case PropOpacity:
		if b.OpacityInt == nil {
			return nil, false
		}
		return U32Property{id: id, Value: *b.OpacityInt}, true
	case PropFloatOpacity:
		if b.OpacityFloat == nil {
			return nil, false
		}
		return F32Property{id: id, Value: *b.OpacityFloat}, true
	case PropMode:
		if b.BlendMode == nil {
			return nil, false
		}
		return U32Property{id: id, Value: *b.BlendMode}, true
	case PropVisible:
		if b.Visible == nil || !*b.Visible {
			return nil, false
		}
		return BoolProperty{id: id, Value: *b.Visible}, true
	case PropLinked:
		if b.Linked == nil || !*b.Linked {
			return nil, false
		}
		return BoolProperty{id: id, Value: *b.Linked}, true
	case PropLockAlpha:
		if b.LockAlpha == nil || !*b.LockAlpha {
			return nil, false
		}
		return BoolProperty{id: id, Value: *b.LockAlpha}, true
	case PropApplyMask:
		if b.ApplyMask == nil {
			return nil, false
		}
		return BoolProperty{id: id, Value: *b.ApplyMask}, true
	case PropEditMask:
		if b.EditMask == nil || !*b.EditMask {
			return nil, false
		}
		return BoolProperty{id: id, Value: *b.EditMask}, true
	case PropShowMask:
		if b.ShowMask == nil || !*b.ShowMask {
			return nil, false
		}
		return BoolProperty{id: id, Value: *b.ShowMask}, true
	case PropShowMasked:
		if b.ShowMasked == nil {
			return nil, false
		}
		return BoolProperty{id: id, Value: *b.ShowMasked}, true
	case PropOffsets:
		if b.OffsetX == nil || b.OffsetY == nil {
			return nil, false
		}
		return OffsetsProperty{X: *b.OffsetX, Y: *b.OffsetY}, true
	case PropColor:
		if b.Color == nil {
			return nil, false
		}
		return ColorProperty{R: b.Color.R, G: b.Color.G, B: b.Color.B}, true
	case PropFloatColor:
		if b.FloatColor == nil {
			return nil, false
		}
		return FloatColorProperty{R: b.FloatColor.R, G: b.FloatColor.G, B: b.FloatColor.B}, true
	case PropCompression:
		if b.Compression == nil {
			return nil, false
		}
		return CompressionProperty{Mode: *b.Compression}, true
	case PropGuides:
		if len(b.Guides) == 0 {
			return nil, false
		}
		return GuidesProperty{Guides: b.Guides}, true
	case PropResolution:
		if b.ResolutionX == nil || b.ResolutionY == nil {
			return nil, false
		}
		return ResolutionProperty{X: *b.ResolutionX, Y: *b.ResolutionY}, true
	case PropTattoo:
		if b.Tattoo == nil {
			return nil, false
		}
		return U32Property{id: id, Value: *b.Tattoo}, true
	case PropParasites:
		if len(b.Parasites) == 0 {
			return nil, false
		}
		return ParasitesProperty{Parasites: b.Parasites}, true
	case PropUnit:
		if b.Unit == nil {
			return nil, false
		}
		return U32Property{id: id, Value: uint32(*b.Unit)}, true
	case PropPaths:
		if len(b.LegacyPaths) == 0 {
			return nil, false
		}
		return PathsProperty{Raw: b.LegacyPaths}, true
	case PropUserUnit:
		if b.UserUnit == nil {
			return nil, false
		}
		return UserUnitProperty{Unit: *b.UserUnit}, true
	case PropVectors:
		if len(b.Vectors) == 0 {
			return nil, false
		}
		return VectorsProperty{Version: b.VectorsVersion, ActiveIndex: b.ActiveVectorIndex, Vectors: b.Vectors}, true
	case PropTextLayerFlags:
		if b.TextLayerFlags == nil {
			return nil, false
		}
		return U32Property{id: id, Value: *b.TextLayerFlags}, true
	case PropLockContent:
		if b.Locked == nil || !*b.Locked {
			return nil, false
		}
		return BoolProperty{id: id, Value: *b.Locked}, true
	case PropItemPath:
		if b.ItemPath == nil {
			return nil, false
		}
		return ItemPathProperty{Path: b.ItemPath}, true
	case PropGroupItemFlags:
		if b.GroupItemFlags == nil {
			return nil, false
		}
		return U32Property{id: id, Value: *b.GroupItemFlags}, true
	case PropLockPosition:
		if b.PositionLocked == nil || !*b.PositionLocked {
			return nil, false
		}
		return BoolProperty{id: id, Value: *b.PositionLocked}, true
	case PropColorTag:
		if b.ColorTag == nil {
			return nil, false
		}
		return U32Property{id: id, Value: uint32(*b.ColorTag)}, true
	case PropCompositeMode:
		if b.CompositeMode == nil {
			return nil, false
		}
		return I32Property{id: id, Value: *b.CompositeMode}, true
	case PropCompositeSpace:
		if b.CompositeSpace == nil {
			return nil, false
		}
		return I32Property{id: id, Value: *b.CompositeSpace}, true
	case PropBlendSpace:
		if b.BlendSpace == nil {
			return nil, false
		}
		return U32Property{id: id, Value: *b.BlendSpace}, true
	case PropSamplePoints:
		if len(b.SamplePoints) == 0 {
			return nil, false
		}
		return SamplePointsProperty{Points: b.SamplePoints}, true
	default:
		return nil, false
	}
}

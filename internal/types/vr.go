package types

// VR is a DICOM value representation such as "PN" or "US".
type VR string

// Value representations.
const (
	VRAE VR = "AE"
	VRAS VR = "AS"
	VRAT VR = "AT"
	VRCS VR = "CS"
	VRDA VR = "DA"
	VRDS VR = "DS"
	VRDT VR = "DT"
	VRFL VR = "FL"
	VRFD VR = "FD"
	VRIS VR = "IS"
	VRLO VR = "LO"
	VRLT VR = "LT"
	VROB VR = "OB"
	VROD VR = "OD"
	VROF VR = "OF"
	VROL VR = "OL"
	VROV VR = "OV"
	VROW VR = "OW"
	VRPN VR = "PN"
	VRSH VR = "SH"
	VRSL VR = "SL"
	VRSQ VR = "SQ"
	VRSS VR = "SS"
	VRST VR = "ST"
	VRSV VR = "SV"
	VRTM VR = "TM"
	VRUC VR = "UC"
	VRUI VR = "UI"
	VRUL VR = "UL"
	VRUN VR = "UN"
	VRUR VR = "UR"
	VRUS VR = "US"
	VRUT VR = "UT"
	VRUV VR = "UV"
)

var knownVRs = map[VR]struct{}{
	VRAE: {}, VRAS: {}, VRAT: {}, VRCS: {}, VRDA: {}, VRDS: {}, VRDT: {},
	VRFL: {}, VRFD: {}, VRIS: {}, VRLO: {}, VRLT: {}, VROB: {}, VROD: {},
	VROF: {}, VROL: {}, VROV: {}, VROW: {}, VRPN: {}, VRSH: {}, VRSL: {},
	VRSQ: {}, VRSS: {}, VRST: {}, VRSV: {}, VRTM: {}, VRUC: {}, VRUI: {},
	VRUL: {}, VRUN: {}, VRUR: {}, VRUS: {}, VRUT: {}, VRUV: {},
}

// Valid reports whether v is a value representation defined by PS3.5.
func (v VR) Valid() bool {
	_, ok := knownVRs[v]
	return ok
}

// HasLongLength reports whether explicit VR encoding uses two reserved bytes
// followed by a 32-bit length for this VR.
func (v VR) HasLongLength() bool {
	switch v {
	case VROB, VROD, VROF, VROL, VROV, VROW, VRSQ, VRUC, VRUN, VRUR, VRUT, VRSV, VRUV:
		return true
	}
	return false
}

// IsString reports whether the value is character data.
func (v VR) IsString() bool {
	switch v {
	case VRAE, VRAS, VRCS, VRDA, VRDS, VRDT, VRIS, VRLO, VRLT, VRPN, VRSH,
		VRST, VRTM, VRUC, VRUI, VRUR, VRUT:
		return true
	}
	return false
}

// IsBulk reports whether the value is opaque binary data that is never
// rendered as text.
func (v VR) IsBulk() bool {
	switch v {
	case VROB, VROD, VROF, VROL, VROV, VROW, VRUN:
		return true
	}
	return false
}

// UsesCharset reports whether the value is decoded with the dataset's
// Specific Character Set rather than the default repertoire.
func (v VR) UsesCharset() bool {
	switch v {
	case VRLO, VRLT, VRPN, VRSH, VRST, VRUC, VRUT:
		return true
	}
	return false
}

// IsText reports whether leading spaces are significant (free text VRs).
func (v VR) IsText() bool {
	switch v {
	case VRLT, VRST, VRUT:
		return true
	}
	return false
}

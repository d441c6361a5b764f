package browse

import (
	"net/url"
	"strings"
)

// ParamQuery is the query-string key for the free-text query. Facet
// keys come from Dimension.Param.
const ParamQuery = "q"

// Comma joins multiple selected values inside one query parameter. It
// is therefore a reserved character: the catalog builder guarantees
// facet values never contain it, and the codec does not escape it.
const listSeparator = ","

// Encode serializes the state into a query string suitable for a
// shareable URL. Keys appear only for non-empty parts of the state;
// multi-valued selections are comma-joined in sorted order. An empty
// state encodes to the empty string.
func Encode(s *State) string {
	v := url.Values{}
	if q := s.Query(); q != "" {
		v.Set(ParamQuery, q)
	}
	for _, d := range Dimensions {
		if sel := s.Selection(d); len(sel) > 0 {
			v.Set(d.Param(), strings.Join(sel, listSeparator))
		}
	}
	return v.Encode()
}

// Decode parses a raw query string back into a State. It never fails:
// malformed input contributes whatever could be parsed, unknown keys
// are ignored, and facet values absent from the catalog are kept as
// inert selections so shared links survive small catalog changes.
// Absent keys leave the corresponding state empty.
func Decode(raw string) *State {
	values, _ := url.ParseQuery(raw)
	return DecodeValues(values)
}

// DecodeValues is Decode over already-parsed query values, used by the
// HTTP transport.
func DecodeValues(values url.Values) *State {
	s := NewState()
	s.SetQuery(values.Get(ParamQuery))
	for _, d := range Dimensions {
		joined := values.Get(d.Param())
		if joined == "" {
			continue
		}
		for _, v := range strings.Split(joined, listSeparator) {
			if v == "" || s.Selected(d, v) {
				continue
			}
			s.Toggle(d, v)
		}
	}
	return s
}

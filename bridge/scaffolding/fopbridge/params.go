package fopbridge

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jrazmi/taskboard/core/scaffolding/fop"
)

// ParseOrderPage reads sort_by, sort_dir, limit and offset. An unknown
// sort_by is dropped without error; a bad limit or offset is an error.
func ParseOrderPage(r *http.Request, orderByFields map[string]string) (fop.By, fop.Page, error) {
	q := r.URL.Query()

	page, err := fop.ParsePage(q.Get("limit"), q.Get("offset"))
	if err != nil {
		return fop.By{}, fop.Page{}, err
	}

	orderBy := fop.ParseSort(orderByFields, q.Get("sort_by"), q.Get("sort_dir"))
	return orderBy, page, nil
}

// StringParam returns nil for an empty value.
func StringParam(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// Int64Param parses an optional integer parameter.
func Int64Param(name, value string) (*int64, error) {
	if value == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q is not an integer", name, value)
	}
	return &v, nil
}

// Float64Param parses an optional decimal parameter.
func Float64Param(name, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q is not a number", name, value)
	}
	return &v, nil
}

// boolValues are the accepted boolean spellings, matched case-insensitively.
var boolValues = map[string]bool{
	"1": true, "t": true, "true": true, "y": true, "yes": true, "on": true,
	"0": false, "f": false, "false": false, "n": false, "no": false, "off": false,
}

// BoolParam parses an optional boolean parameter. Besides true/false it
// accepts 1/0, t/f, y/n, yes/no and on/off in any case.
func BoolParam(name, value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	v, ok := boolValues[strings.ToLower(value)]
	if !ok {
		return nil, fmt.Errorf("invalid %s: %q is not a boolean", name, value)
	}
	return &v, nil
}

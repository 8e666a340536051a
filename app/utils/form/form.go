// Package form reads mutation payloads from urlencoded, multipart or JSON
// request bodies behind one presence-aware accessor. Partial updates depend
// on the distinction between "field absent" and "field present but empty", so
// every accessor is paired with Has.
package form

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zeylcoffee/qrmenu/app/models"
)

const maxMultipartMemory = 8 << 20

type Form struct {
	values url.Values
}

// Parse reads the request body once. JSON bodies are flattened to string
// values; null becomes a present empty string, which downstream coercion
// treats as "clear this field".
func Parse(r *http.Request) (*Form, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var raw map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, err
		}
		values := make(url.Values, len(raw))
		for key, v := range raw {
			values.Set(key, stringify(v))
		}
		return &Form{values: values}, nil
	}

	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, err
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &Form{values: r.PostForm}, nil
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "1"
		}
		return "0"
	default:
		b, _ := json.Marshal(val)
		return string(b)
	}
}

func (f *Form) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

func (f *Form) Get(key string) string {
	return f.values.Get(key)
}

// Int parses an id-like field. ok is false when the field is absent or not a
// whole number.
func (f *Form) Int(key string) (int, bool) {
	s := strings.TrimSpace(f.values.Get(key))
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Price coerces a price field. Empty strings, JSON nulls and unparsable
// input all become a null price rather than an error.
func (f *Form) Price(key string) models.Price {
	s := strings.TrimSpace(f.values.Get(key))
	if s == "" {
		return models.NullPrice()
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return models.NullPrice()
	}
	return models.Price{NullDecimal: decimal.NullDecimal{Decimal: d, Valid: true}}
}

// Bool accepts "1", "true" and "on" as true; everything else is false.
func (f *Form) Bool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(f.values.Get(key))) {
	case "1", "true", "on":
		return true
	}
	return false
}

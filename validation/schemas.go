package validation

import (
	"encoding/json"
	"strconv"
	"strings"
)

// bookSchema carries the per-field constraints shared by the create and
// update operations. Pointers distinguish "absent" from zero values;
// required-ness is checked separately because only create demands fields.
type bookSchema struct {
	Title         *string  `json:"title" validate:"omitnil,min=1,max=200"`
	Author        *string  `json:"author" validate:"omitnil,min=1,max=100"`
	ISBN          *string  `json:"isbn" validate:"omitnil,isbn_format"`
	Price         *float64 `json:"price" validate:"omitnil,gt=0,lte=999999.99"`
	Description   *string  `json:"description" validate:"omitnil,max=1000"`
	PublishedDate *string  `json:"publishedDate" validate:"omitnil,iso_date,not_future"`
}

type searchSchema struct {
	Author *string `json:"author" validate:"omitnil,min=1"`
	Title  *string `json:"title" validate:"omitnil,min=1"`
	Limit  *int    `json:"limit" validate:"omitnil,gte=1,lte=100"`
	Offset *string `json:"offset" validate:"omitnil,min=1"`
}

var (
	bookFieldOrder     = []string{"title", "author", "isbn", "price", "description", "publishedDate"}
	requiredBookFields = []string{"title", "author", "isbn", "price"}
	searchFieldOrder   = []string{"author", "title", "limit", "offset"}
)

// BookInput is the normalized result of a valid create payload.
type BookInput struct {
	Title         string
	Author        string
	ISBN          string
	Price         float64
	Description   string
	PublishedDate string
}

// BookPatch is the normalized result of a valid update payload; nil fields
// were not supplied and must stay untouched.
type BookPatch struct {
	Title         *string
	Author        *string
	ISBN          *string
	Price         *float64
	Description   *string
	PublishedDate *string
}

// Fields lists the supplied field names in schema order.
func (p *BookPatch) Fields() []string {
	var out []string
	for _, f := range bookFieldOrder {
		if p.fieldValue(f) != nil {
			out = append(out, f)
		}
	}
	return out
}

// FieldMap returns the supplied fields as a storage-ready map.
func (p *BookPatch) FieldMap() map[string]any {
	out := make(map[string]any)
	for _, f := range bookFieldOrder {
		if v := p.fieldValue(f); v != nil {
			out[f] = v
		}
	}
	return out
}

func (p *BookPatch) fieldValue(field string) any {
	switch field {
	case "title":
		if p.Title != nil {
			return *p.Title
		}
	case "author":
		if p.Author != nil {
			return *p.Author
		}
	case "isbn":
		if p.ISBN != nil {
			return *p.ISBN
		}
	case "price":
		if p.Price != nil {
			return *p.Price
		}
	case "description":
		if p.Description != nil {
			return *p.Description
		}
	case "publishedDate":
		if p.PublishedDate != nil {
			return *p.PublishedDate
		}
	}
	return nil
}

// SearchQuery is the normalized result of valid list query parameters.
type SearchQuery struct {
	Author string
	Title  string
	Limit  int32
	Offset string
}

// issues accumulates coercion failures. A field that already failed at the
// type level is excluded from constraint checks to avoid double reporting.
type issues struct {
	errs   []FieldError
	broken map[string]bool
}

func newIssues() *issues {
	return &issues{broken: map[string]bool{}}
}

func (ri *issues) add(field, rule string) {
	ri.errs = append(ri.errs, FieldError{Field: field, Message: message(field, rule)})
	ri.broken[field] = true
}

// CreateBook validates a raw create payload against the create-book schema.
// Every violation is collected; unknown fields are silently dropped. On
// success the returned input has publishedDate normalized to RFC 3339 UTC.
func CreateBook(raw map[string]any) (*BookInput, []FieldError) {
	ri := newIssues()
	s := coerceBook(raw, ri)

	for _, f := range requiredBookFields {
		if _, present := raw[f]; !present {
			ri.add(f, "required")
		}
	}

	ri.errs = append(ri.errs, checkStruct(&s, ri.broken)...)
	if len(ri.errs) > 0 {
		return nil, orderErrors(ri.errs, bookFieldOrder)
	}

	in := &BookInput{
		Title:  *s.Title,
		Author: *s.Author,
		ISBN:   *s.ISBN,
		Price:  *s.Price,
	}
	if s.Description != nil {
		in.Description = *s.Description
	}
	if s.PublishedDate != nil {
		in.PublishedDate = NormalizeDate(*s.PublishedDate)
	}
	return in, nil
}

// UpdateBook validates a raw partial-update payload. An empty payload (or
// one containing only unknown fields) is itself a violation.
func UpdateBook(raw map[string]any) (*BookPatch, []FieldError) {
	ri := newIssues()
	s := coerceBook(raw, ri)

	if len(ri.errs) == 0 && s.Title == nil && s.Author == nil && s.ISBN == nil &&
		s.Price == nil && s.Description == nil && s.PublishedDate == nil {
		return nil, []FieldError{{Field: "", Message: msgAtLeastOneField}}
	}

	ri.errs = append(ri.errs, checkStruct(&s, ri.broken)...)
	if len(ri.errs) > 0 {
		return nil, orderErrors(ri.errs, bookFieldOrder)
	}

	p := &BookPatch{
		Title:       s.Title,
		Author:      s.Author,
		ISBN:        s.ISBN,
		Price:       s.Price,
		Description: s.Description,
	}
	if s.PublishedDate != nil {
		normalized := NormalizeDate(*s.PublishedDate)
		p.PublishedDate = &normalized
	}
	return p, nil
}

// BookID validates the path identifier of id-addressed operations.
func BookID(id string) []FieldError {
	if strings.TrimSpace(id) == "" {
		return []FieldError{{Field: "id", Message: message("id", "required")}}
	}
	return nil
}

// SearchParams validates list query parameters. Absent parameters are fine;
// limit defaults to 10, offset is an opaque cursor passed through verbatim.
// When both author and title are given, author wins at query time.
func SearchParams(params map[string]string) (*SearchQuery, []FieldError) {
	ri := newIssues()
	s := searchSchema{}

	if v, ok := params["author"]; ok {
		s.Author = &v
	}
	if v, ok := params["title"]; ok {
		s.Title = &v
	}
	if v, ok := params["offset"]; ok {
		s.Offset = &v
	}
	if v, ok := params["limit"]; ok {
		s.Limit = intField(v, "limit", ri)
	}

	ri.errs = append(ri.errs, checkStruct(&s, ri.broken)...)
	if len(ri.errs) > 0 {
		return nil, orderErrors(ri.errs, searchFieldOrder)
	}

	q := &SearchQuery{Limit: 10}
	if s.Author != nil {
		q.Author = *s.Author
	}
	if s.Title != nil {
		q.Title = *s.Title
	}
	if s.Limit != nil {
		q.Limit = int32(*s.Limit)
	}
	if s.Offset != nil {
		q.Offset = *s.Offset
	}
	return q, nil
}

func coerceBook(raw map[string]any, ri *issues) bookSchema {
	return bookSchema{
		Title:         stringField(raw, "title", ri),
		Author:        stringField(raw, "author", ri),
		ISBN:          stringField(raw, "isbn", ri),
		Price:         priceField(raw, ri),
		Description:   stringField(raw, "description", ri),
		PublishedDate: stringField(raw, "publishedDate", ri),
	}
}

func stringField(raw map[string]any, field string, ri *issues) *string {
	v, present := raw[field]
	if !present {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		ri.add(field, "type")
		return nil
	}
	return &s
}

func priceField(raw map[string]any, ri *issues) *float64 {
	v, present := raw["price"]
	if !present {
		return nil
	}

	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			ri.add("price", "number")
			return nil
		}
		f = parsed
	case float64:
		f = n
	case int:
		f = float64(n)
	default:
		ri.add("price", "number")
		return nil
	}

	if decimalPlaces(f) > 2 {
		ri.add("price", "precision")
		return nil
	}
	return &f
}

// intField parses a query-string integer, distinguishing "not a number"
// from "not an integer".
func intField(value, field string, ri *issues) *int {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		ri.add(field, "number")
		return nil
	}
	n := int(f)
	if float64(n) != f {
		ri.add(field, "integer")
		return nil
	}
	return &n
}

func decimalPlaces(f float64) int {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

package wizard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strconv"
)

type plainField struct {
	name  string
	value string
}

type filePart struct {
	field string
	file  FileField
}

// PayloadBuilder accumulates typed fields and file fields separately and
// serializes them once, so the encoding stays isolated from the UI and
// testable on its own.
type PayloadBuilder struct {
	fields []plainField
	files  []filePart
}

func NewPayloadBuilder() *PayloadBuilder {
	return &PayloadBuilder{}
}

// AddField appends a plain text field.
func (b *PayloadBuilder) AddField(name, value string) {
	b.fields = append(b.fields, plainField{name: name, value: value})
}

// AddJSONField JSON-encodes a composite value (map, list, struct) into a
// text field.
func (b *PayloadBuilder) AddJSONField(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode field %s: %w", name, err)
	}
	b.AddField(name, string(raw))
	return nil
}

// AddFile appends a binary field under the given form name.
func (b *PayloadBuilder) AddFile(field string, f FileField) {
	b.files = append(b.files, filePart{field: field, file: f})
}

// Encode serializes everything accumulated so far into a multipart body and
// returns the content type carrying the boundary.
func (b *PayloadBuilder) Encode() (contentType string, body *bytes.Buffer, err error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	for _, f := range b.fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return "", nil, err
		}
	}
	for _, fp := range b.files {
		part, err := mw.CreateFormFile(fp.field, fp.file.Name)
		if err != nil {
			return "", nil, err
		}
		if _, err := part.Write(fp.file.Content); err != nil {
			return "", nil, err
		}
	}

	if err := mw.Close(); err != nil {
		return "", nil, err
	}
	return mw.FormDataContentType(), buf, nil
}

// BuildSubmission maps the draft onto the wire form the backend expects:
// plain fields as-is, composite fields (availability, social links,
// references, every multi-select) JSON-encoded, files appended directly.
func BuildSubmission(d *RegistrationDraft) (contentType string, body *bytes.Buffer, err error) {
	b := NewPayloadBuilder()

	b.AddField("firstName", d.FirstName)
	b.AddField("lastName", d.LastName)
	b.AddField("email", d.Email)
	b.AddField("phone", d.Phone)
	b.AddField("nationalId", d.NationalID)
	b.AddField("birthDate", d.BirthDate)
	b.AddField("address", d.Address)
	b.AddField("experience", d.Experience)
	b.AddField("hourlyRate", d.HourlyRate)
	b.AddField("fullDayRate", d.FullDayRate)
	b.AddField("multiDayRate", d.MultiDayRate)
	b.AddField("termsAccepted", strconv.FormatBool(d.TermsAccepted))

	for name, v := range map[string]any{
		"languages":        d.Languages,
		"specializations":  d.Specializations,
		"preferredRegions": d.Regions,
		"tourTypes":        d.TourTypes,
		"availability":     d.Availability,
		"socialMedia":      d.SocialMedia,
		"references":       d.References,
	} {
		if err := b.AddJSONField(name, v); err != nil {
			return "", nil, err
		}
	}

	if d.ProfilePhoto.IsSet() {
		b.AddFile("profilePhoto", *d.ProfilePhoto)
	}
	if d.IDPhoto.IsSet() {
		b.AddFile("idPhoto", *d.IDPhoto)
	}
	for _, cert := range d.Certifications {
		b.AddFile("certifications", cert)
	}

	return b.Encode()
}

// Package domain holds the applicant profile form, its validation rules and
// the payload it produces
package domain

import (
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"internhasha/internal/adapters/internhasha"
	"internhasha/internal/core/posting"
	"internhasha/internal/platform/validate"

	"github.com/gabriel-vasile/mimetype"
)

// Limits of the profile form
const (
	MaxSubMajors = 6
	MaxCVBytes   = 5 << 20
	PDFMime      = "application/pdf"
)

// Form field keys used in FormErrors
const (
	FieldStudentID  = "studentId"
	FieldMainMajor  = "mainMajor"
	FieldSubMajors  = "subMajors"
	FieldDuplicates = "majorsDuplicate"
	FieldCV         = "cv"
)

// Messages shown for each rule
const (
	MsgStudentID  = "학번은 두 자리 숫자여야 합니다."
	MsgMainMajor  = "주전공은 필수입니다."
	MsgDuplicates = "학과를 중복 작성할 수 없습니다."
	MsgSubMajors  = "복수/부전공은 최대 6개까지 가능합니다."
	MsgCVMissing  = "이력서 PDF를 업로드해주세요."
	MsgCVNotPDF   = "PDF 파일만 업로드 가능합니다."
	MsgCVTooLarge = "파일 크기는 5MB 이하여야 합니다."
)

// CV is an uploaded resume file
type CV struct {
	Name string `json:"name" example:"resume.pdf"`
	Data []byte `json:"data" swaggertype:"string" format:"base64"`
}

// Form is the applicant profile form.
// StudentID is the two-digit cohort ("23"); MainMajor is sent first.
type Form struct {
	StudentID string   `json:"studentId" validate:"twodigits" example:"23"`
	MainMajor string   `json:"mainMajor" validate:"required"  example:"컴퓨터공학부"`
	SubMajors []string `json:"subMajors" validate:"max=6"     example:"경영학과"`
	CV        *CV      `json:"cv"`
}

// FormErrors maps a field key to its message; empty means valid
type FormErrors map[string]string

// Error implements error with a stable order
func (e FormErrors) Error() string {
	keys := slices.Sorted(maps.Keys(e))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// First returns one field and message, preferring form order
func (e FormErrors) First() (field, msg string) {
	for _, k := range []string{FieldStudentID, FieldMainMajor, FieldDuplicates, FieldSubMajors, FieldCV} {
		if m, ok := e[k]; ok {
			return k, m
		}
	}
	return "", ""
}

var (
	twoDigits    = regexp.MustCompile(`^\d{2}$`)
	registerOnce sync.Once
	tagMessages  = map[string]string{
		FieldStudentID: MsgStudentID,
		FieldMainMajor: MsgMainMajor,
		FieldSubMajors: MsgSubMajors,
	}
)

func registerRules() {
	registerOnce.Do(func() {
		if err := validate.Register("twodigits", func(fl validate.FieldLevel) bool {
			return twoDigits.MatchString(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	})
}

// Clean trims every text field and drops blank sub majors
func (f Form) Clean() Form {
	f.StudentID = strings.TrimSpace(f.StudentID)
	f.MainMajor = strings.TrimSpace(f.MainMajor)
	subs := make([]string, 0, len(f.SubMajors))
	for _, s := range f.SubMajors {
		if s = strings.TrimSpace(s); s != "" {
			subs = append(subs, s)
		}
	}
	f.SubMajors = subs
	return f
}

// Majors returns main major first, then sub majors, blanks dropped
func (f Form) Majors() []string {
	c := f.Clean()
	if c.MainMajor == "" {
		return c.SubMajors
	}
	return append([]string{c.MainMajor}, c.SubMajors...)
}

// Validate runs every rule and reports all failures at once
func (f Form) Validate() FormErrors {
	registerRules()
	c := f.Clean()
	out := FormErrors{}

	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validate.ValidationErrors); ok {
			for _, fe := range verrs {
				if msg, ok := tagMessages[fe.Field()]; ok {
					out[fe.Field()] = msg
				}
			}
		}
	}

	majors := c.Majors()
	seen := make(map[string]struct{}, len(majors))
	for _, m := range majors {
		if _, dup := seen[m]; dup {
			out[FieldDuplicates] = MsgDuplicates
			break
		}
		seen[m] = struct{}{}
	}

	if msg := checkCV(c.CV); msg != "" {
		out[FieldCV] = msg
	}
	return out
}

func checkCV(cv *CV) string {
	if cv == nil || len(cv.Data) == 0 {
		return MsgCVMissing
	}
	if !mimetype.Detect(cv.Data).Is(PDFMime) {
		return MsgCVNotPDF
	}
	if len(cv.Data) > MaxCVBytes {
		return MsgCVTooLarge
	}
	return ""
}

// EnrollYear expands the two-digit cohort: 20 and above is 20xx, below is 19xx
func EnrollYear(two string) (int, bool) {
	two = strings.TrimSpace(two)
	if !twoDigits.MatchString(two) {
		return 0, false
	}
	n, _ := strconv.Atoi(two)
	if n >= 20 {
		return 2000 + n, true
	}
	return 1900 + n, true
}

// Payload builds the upsert body. The CV is checked locally only; no upload
// endpoint exists, so cvKey stays empty.
func (f Form) Payload() internhasha.ApplicantProfile {
	c := f.Clean()
	year, _ := EnrollYear(c.StudentID)
	return internhasha.ApplicantProfile{
		EnrollYear: year,
		Department: strings.Join(c.Majors(), ","),
		Positions:  []string{},
		Stacks:     []string{},
		Links:      []internhasha.Link{},
	}
}

// FormFromProfile prefills an edit form from a stored profile. The CV is not
// returned by the server and must be supplied again.
func FormFromProfile(p internhasha.ApplicantProfile) Form {
	var f Form
	if p.EnrollYear > 0 {
		s := strconv.Itoa(p.EnrollYear)
		f.StudentID = s[max(len(s)-2, 0):]
	}
	if depts := posting.SplitList(p.Department); len(depts) > 0 {
		f.MainMajor = depts[0]
		f.SubMajors = depts[1:]
	}
	return f
}

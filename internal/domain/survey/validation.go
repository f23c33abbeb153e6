package survey

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field keys used in FieldErrors
const (
	FieldName      = "name"
	FieldMobile    = "mobile"
	FieldLocation  = "location"
	FieldSubRegion = "sub_region"
	FieldRole      = "role"
	FieldItems     = "items"
)

// MsgItemMarkupOnly is reported for an item that is empty once markup is removed
const MsgItemMarkupOnly = "Product/Service must be plain text"

var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// RawSubmission is an unvalidated candidate as entered on the form.
// SubRegion is kept as text because it arrives from a select input.
type RawSubmission struct {
	Name      string
	Mobile    string
	Location  string
	SubRegion string
	Role      string
	Items     []string
}

// Submission is a validated respondent plus its committed item names
type Submission struct {
	Respondent Respondent
	Items      []string
}

// FieldErrors maps a field key to the first rule it violated
type FieldErrors map[string]string

// Add records msg for field unless an earlier rule already failed
func (fe FieldErrors) Add(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

// Has reports whether field already failed
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Error implements the error interface
func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

// SubRegionLookup resolves a location name to its sub-region count.
// *location.Directory satisfies it.
type SubRegionLookup interface {
	SubRegionCountFor(name string) (int, bool)
}

type respondentFields struct {
	Name      string `json:"name" validate:"min=2,max=100"`
	Mobile    string `json:"mobile" validate:"mobile"`
	Location  string `json:"location" validate:"required,max=100"`
	SubRegion string `json:"sub_region" validate:"required_with=Location"`
	Role      string `json:"role" validate:"required,oneof=customer agent"`
}

const itemsRule = "min=1,dive,min=2,max=200"

// Validator checks survey submissions. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the survey rules registered
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Validate checks every field of raw and returns either the submission or
// one message per invalid field. Blank items are dropped before the
// "at least one item" rule applies.
func (v *Validator) Validate(raw RawSubmission, lookup SubRegionLookup) (*Submission, FieldErrors) {
	respondent, errs := v.checkRespondent(raw, lookup)

	items := CommitItems(raw.Items)
	if err := v.validate.Var(items, itemsRule); err != nil {
		v.collect(errs, err, FieldItems)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &Submission{Respondent: respondent, Items: items}, nil
}

// ValidateRespondent applies the respondent rules only. Used when editing a
// stored response, whose items are not re-submitted.
func (v *Validator) ValidateRespondent(raw RawSubmission, lookup SubRegionLookup) (*Respondent, FieldErrors) {
	respondent, errs := v.checkRespondent(raw, lookup)
	if len(errs) > 0 {
		return nil, errs
	}
	return &respondent, nil
}

func (v *Validator) checkRespondent(raw RawSubmission, lookup SubRegionLookup) (Respondent, FieldErrors) {
	fields := respondentFields{
		Name:      strings.TrimSpace(raw.Name),
		Mobile:    strings.TrimSpace(raw.Mobile),
		Location:  strings.TrimSpace(raw.Location),
		SubRegion: strings.TrimSpace(raw.SubRegion),
		Role:      strings.TrimSpace(raw.Role),
	}

	errs := FieldErrors{}
	if err := v.validate.Struct(fields); err != nil {
		v.collect(errs, err, "")
	}

	subRegion := 0
	if !errs.Has(FieldLocation) {
		count, ok := lookup.SubRegionCountFor(fields.Location)
		if !ok {
			errs.Add(FieldLocation, "Please select a valid location")
		} else if !errs.Has(FieldSubRegion) {
			n, err := strconv.Atoi(fields.SubRegion)
			switch {
			case err != nil:
				errs.Add(FieldSubRegion, "Sub-region must be a whole number")
			case n < 1 || n > count:
				errs.Add(FieldSubRegion, fmt.Sprintf("Sub-region must be between 1 and %d", count))
			default:
				subRegion = n
			}
		}
	}

	return Respondent{
		Name:      fields.Name,
		Mobile:    fields.Mobile,
		Location:  fields.Location,
		SubRegion: subRegion,
		Role:      Role(fields.Role),
	}, errs
}

func (v *Validator) collect(errs FieldErrors, err error, field string) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.Add(FieldItems, err.Error())
		return
	}
	for _, fe := range validationErrors {
		key := field
		if key == "" {
			key = fe.Field()
		}
		errs.Add(key, fieldMessage(key, fe))
	}
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch field {
	case FieldName:
		if fe.Tag() == "max" {
			return "Name must be less than 100 characters"
		}
		return "Name must be at least 2 characters"
	case FieldMobile:
		return "Please enter a valid 10-digit mobile number"
	case FieldLocation:
		if fe.Tag() == "max" {
			return "Location must be less than 100 characters"
		}
		return "Location is required"
	case FieldSubRegion:
		return "Sub-region is required"
	case FieldRole:
		return "Please select user type"
	case FieldItems:
		switch {
		case fe.Kind() == reflect.Slice:
			return "Please add at least one product/service"
		case fe.Tag() == "max":
			return "Product/Service must be less than 200 characters"
		default:
			return "Product/Service must be at least 2 characters"
		}
	}
	return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
}

// CommitItems trims every entry and drops the blank ones, keeping order.
// The input slice is not modified.
func CommitItems(slots []string) []string {
	items := make([]string, 0, len(slots))
	for _, s := range slots {
		if t := strings.TrimSpace(s); t != "" {
			items = append(items, t)
		}
	}
	return items
}

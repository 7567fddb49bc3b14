package catalog

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"

	"trabaho-board/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json field names, matching the feed
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("applylink", func(fl validator.FieldLevel) bool {
		return validApplyLink(fl.Field().String())
	})
	return v
}

func validApplyLink(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "mailto":
		return u.Opaque != "" || u.Path != ""
	case "http", "https":
		return u.Host != ""
	}
	return false
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// Normalize trims every text field and guarantees a non-nil skills list.
func Normalize(j domain.Job) domain.Job {
	j.Title = cleanText(j.Title)
	j.Company = cleanText(j.Company)
	j.Location = cleanText(j.Location)
	j.Type = cleanText(j.Type)
	j.Salary = cleanText(j.Salary)
	j.Posted = cleanText(j.Posted)
	j.Description = cleanText(j.Description)
	j.ApplyLink = strings.TrimSpace(j.ApplyLink)

	skills := make([]string, 0, len(j.Skills))
	for _, s := range j.Skills {
		if s = cleanText(s); s != "" {
			skills = append(skills, s)
		}
	}
	j.Skills = skills
	return j
}

// Validate reports the first-class problems of a normalized job, one line
// per failing field.
func Validate(j domain.Job) error {
	err := validate.Struct(j)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "applylink":
			msgs = append(msgs, fmt.Sprintf("%s must be a mailto: or http(s) URI", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Rejected describes a record dropped during Prepare.
type Rejected struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Prepare normalizes and validates raw records and assigns IDs in order.
// With strict, the first invalid record fails the whole batch.
func Prepare(raw []domain.Job, strict bool) ([]domain.Job, []Rejected, error) {
	kept := make([]domain.Job, 0, len(raw))
	var rejected []Rejected
	for i, r := range raw {
		j := Normalize(r)
		err := r.DecodeErr
		if err == nil {
			err = Validate(j)
		}
		if err != nil {
			if strict {
				return nil, nil, errors.Wrapf(ErrSchema, "record %d: %v", i, err)
			}
			rejected = append(rejected, Rejected{Index: i, Reason: err.Error()})
			continue
		}
		j.ID = jobID(len(kept)+1, j.Title)
		kept = append(kept, j)
	}
	return kept, rejected, nil
}

func jobID(pos int, title string) string {
	s := slug.Make(title)
	if s == "" {
		return fmt.Sprintf("%d", pos)
	}
	return fmt.Sprintf("%d-%s", pos, s)
}

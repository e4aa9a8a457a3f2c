// Package validation checks the login and meal forms and produces the
// inline Korean error messages shown next to each field.
package validation

import (
	"errors"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"dietSurvivalWeb/internal/types/meal"
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	formEmailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
)

// IsEmail is the loose address check of the mock login endpoint.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsFormEmail is the stricter check the login form applies before submitting.
func IsFormEmail(s string) bool {
	return formEmailPattern.MatchString(s)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("loginemail", func(fl validator.FieldLevel) bool {
		return IsFormEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Errors maps a form field's JSON name to its message.
type Errors map[string]string

var messages = map[string]string{
	"email.required":    "이메일을 입력해주세요.",
	"email.loginemail":  "유효한 이메일 주소를 입력해주세요.",
	"password.required": "비밀번호를 입력해주세요.",
	"password.min":      "비밀번호는 최소 6자 이상이어야 합니다.",
	"mealType.required": "식사 종류를 선택해주세요",
	"foodName.required": "음식 이름을 입력해주세요",
	"calories.required": "칼로리를 입력해주세요",
}

// Generic messages for rules without a field-specific one.
var tagMessages = map[string]string{
	"required": "필수 입력 항목입니다",
	"min":      "0 이상이어야 합니다",
	"oneof":    "올바른 값을 선택해주세요",
}

// Check validates a tagged form struct. It returns nil when the form is
// valid; only the first failing rule per field is reported.
func Check(form any) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{"": err.Error()}
	}

	out := Errors{}
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			out[field] = msg
		} else if msg, ok := tagMessages[fe.Tag()]; ok {
			out[field] = msg
		} else {
			out[field] = fe.Error()
		}
	}
	return out
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,loginemail"`
	Password string `json:"password" validate:"required,min=6"`
}

// MealForm holds the uploader fields. Numbers are pointers so an empty
// input is "missing" rather than zero.
type MealForm struct {
	MealType   string   `json:"mealType" validate:"required,oneof=breakfast lunch dinner snack"`
	FoodName   string   `json:"foodName" validate:"required"`
	Calories   *float64 `json:"calories" validate:"required,min=0"`
	Carbs      *float64 `json:"carbs" validate:"required,min=0"`
	Protein    *float64 `json:"protein" validate:"required,min=0"`
	Fat        *float64 `json:"fat" validate:"required,min=0"`
	NutriScore string   `json:"nutriScore" validate:"required,oneof=A B C D E"`
}

// DefaultMealForm is the uploader's initial state.
func DefaultMealForm() MealForm {
	return MealForm{
		MealType:   string(meal.Lunch),
		Calories:   ptr(0),
		Carbs:      ptr(0),
		Protein:    ptr(0),
		Fat:        ptr(0),
		NutriScore: string(meal.ScoreC),
	}
}

// MealFormFromValues reads a submitted form. Unparseable numbers count as
// missing.
func MealFormFromValues(v url.Values) MealForm {
	return MealForm{
		MealType:   strings.TrimSpace(v.Get("mealType")),
		FoodName:   v.Get("foodName"),
		Calories:   number(v.Get("calories")),
		Carbs:      number(v.Get("carbs")),
		Protein:    number(v.Get("protein")),
		Fat:        number(v.Get("fat")),
		NutriScore: strings.TrimSpace(v.Get("nutriScore")),
	}
}

// Prefill copies every non-empty analysis field into the form.
func (f MealForm) Prefill(a meal.Analysis) MealForm {
	if a.FoodName != "" {
		f.FoodName = a.FoodName
	}
	if a.Calories != 0 {
		f.Calories = ptr(a.Calories)
	}
	if a.Carbs != 0 {
		f.Carbs = ptr(a.Carbs)
	}
	if a.Protein != 0 {
		f.Protein = ptr(a.Protein)
	}
	if a.Fat != 0 {
		f.Fat = ptr(a.Fat)
	}
	if a.NutriScore != "" {
		f.NutriScore = string(a.NutriScore)
	}
	return f
}

// Request converts a validated form into the create payload.
func (f MealForm) Request(date, imageURL string) meal.CreateMealLogRequest {
	return meal.CreateMealLogRequest{
		Date:       date,
		MealType:   meal.MealType(f.MealType),
		FoodName:   f.FoodName,
		Calories:   deref(f.Calories),
		Carbs:      deref(f.Carbs),
		Protein:    deref(f.Protein),
		Fat:        deref(f.Fat),
		NutriScore: meal.NutriScore(f.NutriScore),
		ImageURL:   imageURL,
	}
}

func number(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return nil
	}
	return &n
}

func ptr(v float64) *float64 { return &v }

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

package service

import (
	"errors"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/moodcalendar/internal/error_values"
	"github.com/limbo/moodcalendar/pkg/calendar"
	"github.com/limbo/moodcalendar/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("dmy_date", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(calendar.DateLayout, fl.Field().String())
			return err == nil
		})
		validate.RegisterValidation("hm_time", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(calendar.ClockLayout, fl.Field().String())
			return err == nil
		})
	})
}

// validateStruct joins every field error with ErrValidation.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}

func validateColor(color string) error {
	if err := validate.Var(color, "required,hexcolor"); err != nil {
		return errorvalues.ErrInvalidColor
	}
	return nil
}

// toSpan validates the form and resolves it into a span. Missing times
// default to the start of the start day and 23:59 of the end day.
func (req *SpanRequest) toSpan() (entity.Span, error) {
	if err := validateStruct(req); err != nil {
		return entity.Span{}, err
	}
	start, err := calendar.ParseDateTime(req.StartDate, req.StartTime, false)
	if err != nil {
		return entity.Span{}, err
	}
	end, err := calendar.ParseDateTime(req.EndDate, req.EndTime, true)
	if err != nil {
		return entity.Span{}, err
	}
	if end.Before(start) {
		return entity.Span{}, errorvalues.ErrEndBeforeStart
	}
	return entity.Span{
		Name:    req.Name,
		Start:   start,
		End:     &end,
		Notes:   req.Notes,
		WithWho: req.WithWho,
		Where:   req.Where,
	}, nil
}

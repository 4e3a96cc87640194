package validator

import (
	"errors"
	"fmt"
	"strings"

	"reception/pkg/logger"
	"reception/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type ReceptionValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewReceptionValidator(log *logger.Logger) *ReceptionValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	log.Debug("Reception validator initialized successfully")

	return &ReceptionValidator{
		validate: v,
		logger:   log,
	}
}

func (v *ReceptionValidator) ValidateRoom(room *model.RoomInput) error {
	return v.validateStruct(room)
}

func (v *ReceptionValidator) ValidateClient(client *model.ClientInput) error {
	return v.validateStruct(client)
}

func (v *ReceptionValidator) validateStruct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *ReceptionValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}

package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected field in a 422 response.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

var registerTagNames sync.Once

// useJSONFieldNames makes validator report json names instead of Go field names.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes and validates the request body into obj. On failure it
// writes a 422 response and returns false.
func bindJSON(ctx *gin.Context, obj any) bool {
	useJSONFieldNames()

	err := ctx.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{
				Field:   fieldPath(fe),
				Rule:    fe.Tag(),
				Message: fieldMessage(fe),
			})
		}
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "details": details})
		return false
	}

	ctx.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   "Validation failed",
		"details": []FieldError{{Field: "body", Rule: "json", Message: err.Error()}},
	})
	return false
}

// fieldPath drops the top-level struct name from the namespace,
// e.g. "CreateOrderRequest.items[0].quantity" becomes "items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

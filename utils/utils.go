package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/payloop/billing/types"
)

// APIResponse is the reusable response body shape for all endpoints
func APIResponse(ctx *gin.Context, httpCode int, status string, message string, data interface{}) {
	ctx.JSON(httpCode, types.Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// GetErrorData translates validator errors to field-level error payloads
func GetErrorData(err error) []types.ErrorData {
	var errorData []types.ErrorData

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrors {
			errorData = append(errorData, types.ErrorData{
				Field:   fe.Field(),
				Message: fmt.Sprintf("This field is %s", fe.Tag()),
			})
		}
		return errorData
	}

	return []types.ErrorData{{
		Field:   "",
		Message: err.Error(),
	}}
}

// Paginate returns the page number, offset and page size from query params
func Paginate(ctx *gin.Context) (page int, offset int, pageSize int) {
	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err = strconv.Atoi(ctx.Query("pageSize"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return page, (page - 1) * pageSize, pageSize
}

// ParseJSONResponse decodes a JSON response body, erroring on HTTP error statuses
func ParseJSONResponse(res *http.Response) (map[string]interface{}, error) {
	defer res.Body.Close()

	var data map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	if res.StatusCode >= 400 {
		return data, fmt.Errorf("upstream responded with status %d: %v", res.StatusCode, data["message"])
	}

	return data, nil
}

// ContainsString reports whether item is present in slice
func ContainsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

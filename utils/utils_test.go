package utils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAPIResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	res := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(res)

	APIResponse(ctx, http.StatusOK, "success", "OK", map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, res.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "OK", body["message"])
}

func TestPaginate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults", func(t *testing.T) {
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
		ctx.Request = httptest.NewRequest("GET", "/", nil)

		page, offset, pageSize := Paginate(ctx)
		assert.Equal(t, 1, page)
		assert.Equal(t, 0, offset)
		assert.Equal(t, 20, pageSize)
	})

	t.Run("explicit page and size", func(t *testing.T) {
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
		ctx.Request = httptest.NewRequest("GET", "/?page=3&pageSize=25", nil)

		page, offset, pageSize := Paginate(ctx)
		assert.Equal(t, 3, page)
		assert.Equal(t, 50, offset)
		assert.Equal(t, 25, pageSize)
	})
}

func TestParseJSONResponse(t *testing.T) {
	t.Run("parses a success body", func(t *testing.T) {
		res := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(bytes.NewBufferString(`{"accessToken":"tok"}`)),
		}

		data, err := ParseJSONResponse(res)
		assert.NoError(t, err)
		assert.Equal(t, "tok", data["accessToken"])
	})

	t.Run("errors on a failure status", func(t *testing.T) {
		res := &http.Response{
			StatusCode: 403,
			Body:       io.NopCloser(bytes.NewBufferString(`{"message":"forbidden"}`)),
		}

		_, err := ParseJSONResponse(res)
		assert.Error(t, err)
	})
}

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString([]string{"a", "b"}, "b"))
	assert.False(t, ContainsString([]string{"a", "b"}, "c"))
	assert.False(t, ContainsString(nil, "a"))
}

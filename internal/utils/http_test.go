package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func requestWithParam(name, value string) *http.Request {
	req := httptest.NewRequest("GET", "/", nil)
	params := httprouter.Params{{Key: name, Value: value}}
	ctx := context.WithValue(req.Context(), httprouter.ParamsKey, params)
	return req.WithContext(ctx)
}

func TestExtractParam(t *testing.T) {
	assert.Equal(t, "United Kingdom", ExtractParam(requestWithParam("name", "United Kingdom"), "name"))
	assert.Equal(t, "World", ExtractParam(requestWithParam("name", "World.json"), "name"))
	assert.Equal(t, "India", ExtractParam(requestWithParam("name", "India.png"), "name"))
	assert.Equal(t, "India", ExtractParam(requestWithParam("name", "India.svg"), "name"))
	assert.Equal(t, "", ExtractParam(requestWithParam("name", "India"), "other"))
}

func TestExtractFormat(t *testing.T) {
	assert.Equal(t, "svg", ExtractFormat(requestWithParam("name", "India.svg"), "name"))
	assert.Equal(t, "png", ExtractFormat(requestWithParam("name", "India.png"), "name"))
	assert.Equal(t, "png", ExtractFormat(requestWithParam("name", "India"), "name"))
}

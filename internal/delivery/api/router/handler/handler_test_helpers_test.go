package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"edusync/internal/delivery/api/middleware"
	"edusync/internal/delivery/api/validator"
	"edusync/internal/domain/entity"
	"edusync/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// envelope is the decoded form of both success and error responses.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

type testRequest struct {
	method      string
	target      string
	body        io.Reader
	contentType string
	params      map[string]string
	actor       *usecase.Actor
}

func newTestContext(req testRequest) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	httpReq := httptest.NewRequest(req.method, req.target, req.body)
	if req.contentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(httpReq, rec)

	names := make([]string, 0, len(req.params))
	values := make([]string, 0, len(req.params))
	for name, value := range req.params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if req.actor != nil {
		middleware.SetActor(c, req.actor)
	}

	return c, rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()

	body, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(body)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()

	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, v))
}

type formFile struct {
	field    string
	filename string
	content  []byte
}

// multipartBody encodes fields and an optional file as multipart/form-data.
func multipartBody(t *testing.T, fields map[string]string, file *formFile) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}

	if file != nil {
		part, err := w.CreateFormFile(file.field, file.filename)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func instructorActor() *usecase.Actor {
	return &usecase.Actor{Email: "grace@example.com", Role: entity.RoleInstructor}
}

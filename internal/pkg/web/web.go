package web

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

func GetEmptyResponse(status int, headers Headers) *Response {
	return GetResponse(status, []byte(""), headers)
}

func GetResponse(status int, content []byte, headers Headers) *Response {
	return &Response{
		Status:  status,
		Content: content,
		Headers: headers,
	}
}

func GetJsonResponse(status int, data any, headers Headers) *Response {
	content, err := sonic.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("sonic.Marshal() failed")
		return GetEmptyResponse(http.StatusInternalServerError, nil)
	}

	return &Response{
		Status:      status,
		ContentType: "application/json",
		Content:     content,
		Headers:     headers,
	}
}

func GetErrorResponse(status int, message string) *Response {
	return GetJsonResponse(status, map[string]string{"error": message}, nil)
}

func DecodeJsonRequest(request *http.Request, target any) error {
	body, err := io.ReadAll(request.Body)
	if err != nil {
		return err
	}

	return sonic.Unmarshal(body, target)
}

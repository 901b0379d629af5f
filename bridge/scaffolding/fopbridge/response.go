// Package fopbridge turns query strings into fop values and shapes list
// and acknowledgement responses.
package fopbridge

import "encoding/json"

// CodeResponse provides a standard response with code and message
type CodeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewCodeResponse(code, message string) CodeResponse {
	return CodeResponse{Code: code, Message: message}
}

func (c CodeResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(c)
	return data, "application/json", err
}

// OKResponse acknowledges a mutation that returns no record.
type OKResponse struct {
	OK bool `json:"ok"`
}

func NewOKResponse() OKResponse {
	return OKResponse{OK: true}
}

func (o OKResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(o)
	return data, "application/json", err
}

// ListResponse encodes records as a bare JSON array. A nil slice encodes
// as [] rather than null.
type ListResponse[T any] struct {
	Records []T
}

func NewListResponse[T any](records []T) ListResponse[T] {
	return ListResponse[T]{Records: records}
}

func (l ListResponse[T]) Encode() ([]byte, string, error) {
	records := l.Records
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	return data, "application/json", err
}

package client

import (
	"testing"

	"github.com/travelhub/travel-client/internal/apperrors"
)

func TestDecodeEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantCode apperrors.ResultCode
		wantData string
	}{
		{name: "success with data", body: `{"code":0,"message":"success","data":{"id":1},"timestamp":1700000000000}`, wantData: `{"id":1}`},
		{name: "success null data", body: `{"code":0,"data":null}`},
		{name: "success without data", body: `{"code":0}`},
		{name: "domain error", body: `{"code":20001,"message":"spot not found"}`, wantCode: apperrors.CodeSpotNotFound},
		{name: "missing code", body: `{"message":"hi"}`, wantErr: true},
		{name: "string code", body: `{"code":"0"}`, wantErr: true},
		{name: "fractional code", body: `{"code":1.5}`, wantErr: true},
		{name: "array body", body: `[1,2]`, wantErr: true},
		{name: "not json", body: `<html>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := DecodeEnvelope([]byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeEnvelope() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if env.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", env.Code, tt.wantCode)
			}
			if string(env.Data) != tt.wantData {
				t.Errorf("Data = %q, want %q", env.Data, tt.wantData)
			}
		})
	}
}

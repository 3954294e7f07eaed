package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gpu-reserve-go/aiclient"
	"github.com/linskybing/gpu-reserve-go/services"
)

func TestWriteServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: empty text", services.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: timeout", aiclient.ErrInterpretationFailed), http.StatusBadRequest},
		{fmt.Errorf("%w: no active servers", services.ErrServerUnavailable), http.StatusBadRequest},
		{fmt.Errorf("%w: reservation 7", services.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: already cancelled", services.ErrInvalidState), http.StatusConflict},
		{fmt.Errorf("%w: retry exhausted", services.ErrConcurrencyConflict), http.StatusConflict},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		writeServiceError(c, tc.err)
		if w.Code != tc.code {
			t.Fatalf("error %v mapped to %d, want %d", tc.err, w.Code, tc.code)
		}
	}
}

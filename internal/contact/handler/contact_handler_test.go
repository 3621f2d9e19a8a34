package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sonai2004/My-Portfolio/internal/contact/domain"
	"github.com/Sonai2004/My-Portfolio/internal/contact/dto"
	"github.com/Sonai2004/My-Portfolio/internal/contact/handler"
	"github.com/Sonai2004/My-Portfolio/internal/contact/service"
	apperrors "github.com/Sonai2004/My-Portfolio/internal/errors"
	"github.com/Sonai2004/My-Portfolio/internal/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passthrough(c *fiber.Ctx) error { return c.Next() }

func newTestApp(t *testing.T) (*fiber.App, *mocks.MockMessageRepository, *mocks.MockSender) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockMessageRepository(ctrl)
	mockSender := mocks.NewMockSender(ctrl)
	contactService := service.NewContactService(mockRepo, mockSender)
	contactHandler := handler.NewContactHandler(contactService)

	app := fiber.New()
	handler.RegisterRoutes(app, contactHandler, passthrough, passthrough)
	return app, mockRepo, mockSender
}

func TestSubmit(t *testing.T) {
	app, mockRepo, mockSender := newTestApp(t)

	input := dto.MessageInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice portfolio!",
	}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		mockSender.EXPECT().SendContactNotification(gomock.Any(), gomock.Any()).Return(nil)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var out dto.MessageOutput
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.NotEmpty(t, out.ID)
		assert.Equal(t, input.Message, out.Message)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		body, _ := json.Marshal(dto.MessageInput{Name: "Visitor"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		bad := input
		bad.Email = "not-an-email"
		body, _ := json.Marshal(bad)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestInbox(t *testing.T) {
	app, mockRepo, _ := newTestApp(t)

	t.Run("list", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).
			Return([]domain.Message{{ID: "m-1", Name: "Visitor", Body: "hello"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/messages/", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out []dto.MessageOutput
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Len(t, out, 1)
		assert.Equal(t, "hello", out[0].Message)
	})

	t.Run("mark read", func(t *testing.T) {
		mockRepo.EXPECT().MarkRead(gomock.Any(), "m-1").Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/messages/m-1/read", nil)
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("delete unknown message", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), "ghost").Return(apperrors.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/messages/ghost", nil)
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"FoodLink-Backend/domain"
	"FoodLink-Backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFoodService struct{ mock.Mock }

func (m *MockFoodService) CreateFood(ctx context.Context, req domain.CreateFoodRequest, userID string) (domain.FoodResponse, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.FoodResponse), args.Error(1)
}

func (m *MockFoodService) GetAllFoods(ctx context.Context) ([]domain.FoodResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FoodResponse), args.Error(1)
}

func (m *MockFoodService) GetMyFoods(ctx context.Context, userID string) ([]domain.FoodResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.FoodResponse), args.Error(1)
}

func (m *MockFoodService) GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.FoodResponse), args.Error(1)
}

func (m *MockFoodService) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, userID string, role string) (domain.FoodResponse, error) {
	args := m.Called(ctx, id, req, userID, role)
	return args.Get(0).(domain.FoodResponse), args.Error(1)
}

func (m *MockFoodService) DeleteFood(ctx context.Context, id string, userID string, role string) error {
	return m.Called(ctx, id, userID, role).Error(0)
}

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (domain.OrderResponse, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.OrderResponse), args.Error(1)
}

func (m *MockOrderService) GetOrderByID(ctx context.Context, id string, userID string, role string) (domain.OrderResponse, error) {
	args := m.Called(ctx, id, userID, role)
	return args.Get(0).(domain.OrderResponse), args.Error(1)
}

func (m *MockOrderService) GetMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.OrderResponse), args.Error(1)
}

func (m *MockOrderService) GetDonorOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.OrderResponse), args.Error(1)
}

func (m *MockOrderService) UpdateOrderStatus(ctx context.Context, id string, status string, userID string, role string) (domain.UpdateOrderStatusResponse, error) {
	args := m.Called(ctx, id, status, userID, role)
	return args.Get(0).(domain.UpdateOrderStatusResponse), args.Error(1)
}

type MockFundService struct{ mock.Mock }

func (m *MockFundService) CreateFund(ctx context.Context, req domain.CreateFundRequest, userID string) (domain.FundResponse, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.FundResponse), args.Error(1)
}

func (m *MockFundService) GetMyFunds(ctx context.Context, userID string) ([]domain.FundResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.FundResponse), args.Error(1)
}

func (m *MockFundService) GetAllFunds(ctx context.Context) ([]domain.FundResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FundResponse), args.Error(1)
}

type MockLeaderboardService struct{ mock.Mock }

func (m *MockLeaderboardService) GetLeaderboard(ctx context.Context) (domain.LeaderboardResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.LeaderboardResponse), args.Error(1)
}

func (m *MockLeaderboardService) ExportXLSX(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	if args.Error(0) == nil {
		_, _ = w.Write([]byte("PK-xlsx"))
	}
	return args.Error(0)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.AuthResponse), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.AuthResponse), args.Error(1)
}

func (m *MockUserService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserResponse), args.Error(1)
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]domain.UserResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UserResponse), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, id string) (domain.UserResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.UserResponse), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.UserResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(domain.UserResponse), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// newApp authenticates every request as the given caller.
func newApp(userID, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("role", role)
		c.Locals("access", true)
		return c.Next()
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	out := map[string]interface{}{}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestFoodHandler(t *testing.T) {
	v := utils.NewValidator()

	t.Run("CreateFood", func(t *testing.T) {
		svc := new(MockFoodService)
		app := newApp("donor-1", domain.RoleDonor)
		app.Post("/api/foods", NewFoodHandler(svc, v).CreateFood)

		svc.On("CreateFood", mock.Anything, mock.MatchedBy(func(r domain.CreateFoodRequest) bool {
			return r.Name == "Rice" && r.Quantity == "5 kg"
		}), "donor-1").Return(domain.FoodResponse{ID: "f1", Name: "Rice", Status: domain.FoodStatusAvailable}, nil)

		status, body := doJSON(t, app, "POST", "/api/foods", `{"name":"Rice","quantity":"5 kg"}`)
		assert.Equal(t, fiber.StatusCreated, status)
		assert.Equal(t, "f1", body["id"])
		assert.Equal(t, "available", body["status"])
	})

	t.Run("CreateFoodInvalidType", func(t *testing.T) {
		svc := new(MockFoodService)
		app := newApp("donor-1", domain.RoleDonor)
		app.Post("/api/foods", NewFoodHandler(svc, v).CreateFood)

		status, body := doJSON(t, app, "POST", "/api/foods", `{"name":"Rice","type":"candy"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, body["message"], "Type")
		svc.AssertNotCalled(t, "CreateFood", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CreateFoodEstimatorDownHidesDetail", func(t *testing.T) {
		svc := new(MockFoodService)
		app := newApp("donor-1", domain.RoleDonor)
		app.Post("/api/foods", NewFoodHandler(svc, v).CreateFood)
		svc.On("CreateFood", mock.Anything, mock.Anything, "donor-1").
			Return(domain.FoodResponse{}, errors.New("dial tcp: secret-host refused"))

		status, body := doJSON(t, app, "POST", "/api/foods", `{"name":"Rice"}`)
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, domain.MessageFailedCreateFood, body["message"])
	})

	t.Run("GetFoodNotFound", func(t *testing.T) {
		svc := new(MockFoodService)
		app := fiber.New()
		app.Get("/api/foods/:id", NewFoodHandler(svc, v).GetFoodByID)
		svc.On("GetFoodByID", mock.Anything, "missing").Return(domain.FoodResponse{}, domain.ErrFoodNotFound)

		status, body := doJSON(t, app, "GET", "/api/foods/missing", "")
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "food not found", body["message"])
	})

	t.Run("UpdateFoodForbidden", func(t *testing.T) {
		svc := new(MockFoodService)
		app := newApp("donor-2", domain.RoleDonor)
		app.Put("/api/foods/:id", NewFoodHandler(svc, v).UpdateFood)
		svc.On("UpdateFood", mock.Anything, "f1", mock.Anything, "donor-2", domain.RoleDonor).
			Return(domain.FoodResponse{}, domain.ErrUnauthorizedAccess)

		status, _ := doJSON(t, app, "PUT", "/api/foods/f1", `{"price":3}`)
		assert.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run("UpdateFoodIgnoresDonorField", func(t *testing.T) {
		svc := new(MockFoodService)
		app := newApp("donor-1", domain.RoleDonor)
		app.Put("/api/foods/:id", NewFoodHandler(svc, v).UpdateFood)
		svc.On("UpdateFood", mock.Anything, "f1", mock.MatchedBy(func(r domain.UpdateFoodRequest) bool {
			return r.Description != nil && *r.Description == "Fresh" && r.Price == nil && r.Status == nil
		}), "donor-1", domain.RoleDonor).Return(domain.FoodResponse{ID: "f1", DonorID: "donor-1"}, nil)

		status, body := doJSON(t, app, "PUT", "/api/foods/f1", `{"description":"Fresh","donor":"someone-else","id":"x"}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "donor-1", body["donorId"])
	})

	t.Run("DeleteFood", func(t *testing.T) {
		svc := new(MockFoodService)
		app := newApp("donor-1", domain.RoleDonor)
		app.Delete("/api/foods/:id", NewFoodHandler(svc, v).DeleteFood)
		svc.On("DeleteFood", mock.Anything, "f1", "donor-1", domain.RoleDonor).Return(nil)

		status, body := doJSON(t, app, "DELETE", "/api/foods/f1", "")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "Food removed", body["message"])
	})
}

func TestOrderHandler(t *testing.T) {
	v := utils.NewValidator()

	t.Run("PlaceOrderNotAvailable", func(t *testing.T) {
		svc := new(MockOrderService)
		app := newApp("ngo-1", domain.RoleNGO)
		app.Post("/api/orders", NewOrderHandler(svc, v).PlaceOrder)
		svc.On("PlaceOrder", mock.Anything, mock.Anything, "ngo-1").Return(domain.OrderResponse{}, domain.ErrFoodNotAvailable)

		status, body := doJSON(t, app, "POST", "/api/orders", `{"foodId":"6f1c1f36-6a0e-4c4b-9a57-0a4e2b0f6d11","quantity":"5 kg"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Food not available", body["message"])
	})

	t.Run("PlaceOrderValidation", func(t *testing.T) {
		svc := new(MockOrderService)
		app := newApp("ngo-1", domain.RoleNGO)
		app.Post("/api/orders", NewOrderHandler(svc, v).PlaceOrder)

		status, _ := doJSON(t, app, "POST", "/api/orders", `{"foodId":"not-a-uuid"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		svc := new(MockOrderService)
		app := newApp("donor-1", domain.RoleDonor)
		app.Patch("/api/orders/:id/status", NewOrderHandler(svc, v).UpdateOrderStatus)
		svc.On("UpdateOrderStatus", mock.Anything, "o1", "confirmed", "donor-1", domain.RoleDonor).
			Return(domain.UpdateOrderStatusResponse{Message: "Order status updated to confirmed", Order: domain.OrderResponse{ID: "o1", Status: "confirmed"}}, nil)

		status, body := doJSON(t, app, "PATCH", "/api/orders/o1/status", `{"status":"confirmed"}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "Order status updated to confirmed", body["message"])
	})

	t.Run("UpdateStatusErrors", func(t *testing.T) {
		tests := []struct {
			err  error
			want int
		}{
			{domain.ErrInvalidOrderStatus, fiber.StatusBadRequest},
			{domain.ErrInvalidOrderTransition, fiber.StatusBadRequest},
			{domain.ErrUnauthorizedOrderAccess, fiber.StatusForbidden},
			{domain.ErrOrderNotFound, fiber.StatusNotFound},
		}
		for _, tt := range tests {
			svc := new(MockOrderService)
			app := newApp("ngo-1", domain.RoleNGO)
			app.Patch("/api/orders/:id/status", NewOrderHandler(svc, v).UpdateOrderStatus)
			svc.On("UpdateOrderStatus", mock.Anything, "o1", "in-transit", "ngo-1", domain.RoleNGO).
				Return(domain.UpdateOrderStatusResponse{}, tt.err)

			status, _ := doJSON(t, app, "PATCH", "/api/orders/o1/status", `{"status":"in-transit"}`)
			assert.Equal(t, tt.want, status, tt.err.Error())
		}
	})
}

func TestOrderHandler_UnknownStatus(t *testing.T) {
	svc := new(MockOrderService)
	app := newApp("stranger", domain.RoleNGO)
	app.Patch("/api/orders/:id/status", NewOrderHandler(svc, utils.NewValidator()).UpdateOrderStatus)

	for _, body := range []string{`{"status":"shipped"}`, `{}`} {
		status, resp := doJSON(t, app, "PATCH", "/api/orders/o1/status", body)
		assert.Equal(t, fiber.StatusBadRequest, status, body)
		assert.Equal(t, "Invalid status", resp["message"])
	}
	svc.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFundHandler(t *testing.T) {
	v := utils.NewValidator()

	t.Run("MissingAmount", func(t *testing.T) {
		svc := new(MockFundService)
		app := newApp("donor-1", domain.RoleDonor)
		app.Post("/api/funds", NewFundHandler(svc, v).CreateFund)

		status, body := doJSON(t, app, "POST", "/api/funds", `{"paymentMethod":"upi"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Amount & payment method required", body["message"])
		svc.AssertNotCalled(t, "CreateFund", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		svc := new(MockFundService)
		app := newApp("donor-1", domain.RoleDonor)
		app.Post("/api/funds", NewFundHandler(svc, v).CreateFund)
		svc.On("CreateFund", mock.Anything, mock.Anything, "donor-1").
			Return(domain.FundResponse{ID: "d1", Status: domain.FundStatusCompleted, TransactionID: "TXN_1_1"}, nil)

		status, body := doJSON(t, app, "POST", "/api/funds", `{"amount":100,"paymentMethod":"upi"}`)
		assert.Equal(t, fiber.StatusCreated, status)
		assert.Equal(t, "completed", body["status"])
	})
}

func TestLeaderboardHandler(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		svc := new(MockLeaderboardService)
		app := fiber.New()
		app.Get("/api/leaderboard", NewLeaderboardHandler(svc).GetLeaderboard)
		svc.On("GetLeaderboard", mock.Anything).Return(domain.LeaderboardResponse{
			Success:         true,
			FoodLeaderboard: []domain.FoodLeaderboardEntry{},
			FundLeaderboard: []domain.FundLeaderboardEntry{},
		}, nil)

		status, body := doJSON(t, app, "GET", "/api/leaderboard", "")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, body["success"])
		assert.NotNil(t, body["foodLeaderboard"])
	})

	t.Run("Export", func(t *testing.T) {
		svc := new(MockLeaderboardService)
		app := fiber.New()
		app.Get("/api/leaderboard/export", NewLeaderboardHandler(svc).ExportLeaderboard)
		svc.On("ExportXLSX", mock.Anything, mock.Anything).Return(nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/leaderboard/export", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "leaderboard_")
	})
}

func TestUserHandler(t *testing.T) {
	v := utils.NewValidator()

	t.Run("RegisterValidation", func(t *testing.T) {
		svc := new(MockUserService)
		app := fiber.New()
		app.Post("/api/auth/register", NewUserHandler(svc, v).Register)

		status, _ := doJSON(t, app, "POST", "/api/auth/register", `{"name":"A","email":"bad","password":"123456","role":"donor"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("RegisterAdminRejected", func(t *testing.T) {
		svc := new(MockUserService)
		app := fiber.New()
		app.Post("/api/auth/register", NewUserHandler(svc, v).Register)

		status, _ := doJSON(t, app, "POST", "/api/auth/register", `{"name":"A","email":"a@example.com","password":"123456","role":"admin"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("LoginBadCredentials", func(t *testing.T) {
		svc := new(MockUserService)
		app := fiber.New()
		app.Post("/api/auth/login", NewUserHandler(svc, v).Login)
		svc.On("Login", mock.Anything, domain.LoginRequest{Email: "a@example.com", Password: "x"}).
			Return(domain.AuthResponse{}, domain.ErrInvalidCredentials)

		status, _ := doJSON(t, app, "POST", "/api/auth/login", `{"email":"a@example.com","password":"x"}`)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("DeleteUser", func(t *testing.T) {
		svc := new(MockUserService)
		app := newApp("admin-1", domain.RoleAdmin)
		app.Delete("/api/users/:id", NewUserHandler(svc, v).DeleteUser)
		svc.On("DeleteUser", mock.Anything, "u1").Return(domain.ErrUserNotFound).Once()
		svc.On("DeleteUser", mock.Anything, "u2").Return(nil).Once()

		status, body := doJSON(t, app, "DELETE", "/api/users/u1", "")
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "User not found", body["message"])

		status, body = doJSON(t, app, "DELETE", "/api/users/u2", "")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "User removed", body["message"])
	})
}

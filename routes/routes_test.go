package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	artisanRepo "hirafic/database/repository/artisan"
	bookingRepo "hirafic/database/repository/booking"
	reportRepo "hirafic/database/repository/report"
	userRepo "hirafic/database/repository/user"
	"hirafic/handlers"
	"hirafic/services/account"
	"hirafic/services/booking"
	"hirafic/services/discovery"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	users := userRepo.NewMemoryUserRepo()
	artisans := artisanRepo.NewMemoryArtisanRepo()
	bookings := bookingRepo.NewMemoryBookingRepo()
	reports := reportRepo.NewMemoryReportRepo()

	accountService := &account.DefaultAccountService{
		Users:    users,
		Artisans: artisans,
		Logger:   zap.NewNop(),
	}
	discoveryService := &discovery.DefaultDiscoveryService{Repo: artisans}
	bookingService := &booking.DefaultBookingService{
		Repo:        bookings,
		ArtisanRepo: artisans,
		ReportRepo:  reports,
		Logger:      zap.NewNop(),
	}

	accountHandler := handlers.NewAccountHandler(accountService)
	discoveryHandler := handlers.NewDiscoveryHandler(discoveryService, accountService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		RegisterHandler:       accountHandler.RegisterHandler,
		AuthenticateHandler:   accountHandler.AuthenticateHandler,
		ClientProfileHandler:  accountHandler.ClientProfileHandler,
		ArtisanProfileHandler: accountHandler.ArtisanProfileHandler,

		ListArtisansHandler:   discoveryHandler.ListArtisansHandler,
		NearbyArtisansHandler: discoveryHandler.NearbyArtisansHandler,

		CreateBookingHandler:     bookingHandler.CreateBookingHandler,
		ListBookingsHandler:      bookingHandler.ListBookingsHandler,
		TransitionBookingHandler: bookingHandler.TransitionBookingHandler,
		FileReportHandler:        bookingHandler.FileReportHandler,
	})
	return r
}

func do(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func register(t *testing.T, r *gin.Engine, username, email, role string) {
	t.Helper()
	w := do(r, http.MethodPost, "/register", "", gin.H{
		"username":       username,
		"email":          email,
		"password":       "s3cret-pw",
		"role":           role,
		"specialization": "Plumber",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func login(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/login", "", gin.H{
		"email":    email,
		"password": "s3cret-pw",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealthEndpoint(t *testing.T) {
	w := do(setupRouter(), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	r := setupRouter()
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/bookings"},
		{http.MethodGet, "/all_artisans"},
		{http.MethodPost, "/nearby_artisans"},
		{http.MethodPost, "/bookings"},
		{http.MethodPut, "/bookings"},
		{http.MethodGet, "/client"},
		{http.MethodGet, "/artisan"},
	} {
		w := do(r, tc.method, tc.path, "", nil)
		assert.Equalf(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestBookingFlowOverHTTP(t *testing.T) {
	r := setupRouter()
	register(t, r, "alice", "alice@example.com", "Client")
	register(t, r, "bob", "bob@example.com", "Artisan")
	clientToken := login(t, r, "alice@example.com")
	artisanToken := login(t, r, "bob@example.com")

	// An artisan cannot open a booking.
	w := do(r, http.MethodPost, "/bookings", artisanToken, gin.H{
		"artisan_email": "bob@example.com",
		"title":         "Fix sink",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The client books via the legacy alias.
	w = do(r, http.MethodPost, "/book_artisan", clientToken, gin.H{
		"artisan_email": "bob@example.com",
		"title":         "Fix sink",
		"details":       "Leak under the counter",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	bookingID, _ := created["id"].(string)
	require.NotEmpty(t, bookingID)
	assert.Equal(t, "Pending", created["status"])

	// Only the artisan may decide; the client gets 403.
	w = do(r, http.MethodPut, "/bookings", clientToken, gin.H{
		"booking_id": bookingID, "action": "Accepted",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodPut, "/bookings", artisanToken, gin.H{
		"booking_id": bookingID, "action": "Accepted",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Accepted", decode(t, w)["status"])

	// A second accept observes the stale status and conflicts.
	w = do(r, http.MethodPut, "/bookings", artisanToken, gin.H{
		"booking_id": bookingID, "action": "Accepted",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPut, "/bookings", artisanToken, gin.H{
		"booking_id": bookingID, "action": "Completed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Both sides see the booking in their own list.
	for _, token := range []string{clientToken, artisanToken} {
		w = do(r, http.MethodGet, "/bookings", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Len(t, body["bookings"], 1)
		assert.EqualValues(t, 1, body["current_page"])
		assert.EqualValues(t, 1, body["total_pages"])
	}

	// The client files a report via the legacy GET form.
	w = do(r, http.MethodGet,
		"/report?booking_id="+bookingID+"&issue=left+early", clientToken, nil)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestDiscoveryOverHTTP(t *testing.T) {
	r := setupRouter()
	register(t, r, "alice", "alice@example.com", "Client")
	register(t, r, "bob", "bob@example.com", "Artisan")
	clientToken := login(t, r, "alice@example.com")

	w := do(r, http.MethodGet, "/all_artisans?page=1&per_page=10", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Len(t, body["artisans"], 1)
	assert.EqualValues(t, 1, body["total_pages"])

	// No stored client location and no explicit origin: rejected.
	w = do(r, http.MethodPost, "/nearby_artisans", clientToken, gin.H{
		"distance": 10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Explicit origin works; bob sits at (0,0) with no geocoder wired.
	lat, lon := 0.001, 0.001
	w = do(r, http.MethodPost, "/nearby_artisans", clientToken, gin.H{
		"distance":  10,
		"latitude":  lat,
		"longitude": lon,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decode(t, w)["artisans"], 1)
}

func TestProfileEndpointsAreRoleScoped(t *testing.T) {
	r := setupRouter()
	register(t, r, "alice", "alice@example.com", "Client")
	register(t, r, "bob", "bob@example.com", "Artisan")
	clientToken := login(t, r, "alice@example.com")
	artisanToken := login(t, r, "bob@example.com")

	w := do(r, http.MethodGet, "/client", clientToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodGet, "/client", artisanToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodGet, "/artisan", artisanToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodGet, "/artisan", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A profile update flows through to the provider record.
	w = do(r, http.MethodPost, "/artisan", artisanToken, gin.H{
		"specialization": "Electrician",
		"hourly_rate":    30,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Electrician", body["specialization"])
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/fractionax/marketplace/internal/config"
	"github.com/fractionax/marketplace/internal/database"
	"github.com/fractionax/marketplace/internal/funding"
	"github.com/fractionax/marketplace/internal/logic"
	"github.com/fractionax/marketplace/internal/model"
	"github.com/fractionax/marketplace/internal/purchase"
	"github.com/fractionax/marketplace/internal/wallet"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	poolAddress = "0x35B55F36A88240BAbC35F9681163c57608D34CeD"
	testKey     = "0xb71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Status int `json:"status"`
	Data   struct {
		Msg    string          `json:"msg"`
		Result json.RawMessage `json:"result"`
	} `json:"data"`
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	return db
}

func newStoreRouter(db *gorm.DB) *gin.Engine {
	h := NewStoreHandlers(db)
	r := gin.New()
	r.GET("/api/investments", h.Investments.List)
	r.POST("/api/investments", h.Investments.Create)
	r.GET("/api/users", h.Users.List)
	r.POST("/api/users", h.Users.Create)
	r.GET("/api/newsletter", h.Newsletter.List)
	r.POST("/api/newsletter", h.Newsletter.Create)
	r.POST("/api/interest", h.Interests.Create)
	r.GET("/api/interest", h.Interests.List)
	return r
}

func do(r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestInvestmentNotFoundReturnsEmptyResult(t *testing.T) {
	r := newStoreRouter(newTestDB(t))

	w, env := do(r, http.MethodGet, "/api/investments?id=999", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusOK, env.Status)
	assert.Equal(t, "Investment not found", env.Data.Msg)
	assert.JSONEq(t, "[]", string(env.Data.Result))
}

func TestInvestmentCreateAndFetch(t *testing.T) {
	r := newStoreRouter(newTestDB(t))

	body := map[string]interface{}{
		"title": "Harbour Loft", "category": "Real Estate", "location": "Lisbon", "country": "Portugal",
		"structure": "SPV", "author": "FractionaX", "chain": "Core", "stage": "Open", "yields": "8%",
		"period": "5y", "claim": "Rental", "frequency": "Quarterly", "contract": poolAddress,
		"keywords": []string{"loft"}, "content": `One\nTwo`, "images": []string{"a.jpg"},
		"minimum": "1", "maximum": "100",
	}
	w, env := do(r, http.MethodPost, "/api/investments", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Successful in creating investment", env.Data.Msg)

	var created model.InvestmentModel
	require.NoError(t, json.Unmarshal(env.Data.Result, &created))
	assert.NotZero(t, created.Id)

	w, env = do(r, http.MethodGet, "/api/investments?id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successful in fetching investments", env.Data.Msg)

	var rows []model.InvestmentModel
	require.NoError(t, json.Unmarshal(env.Data.Result, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Harbour Loft", rows[0].Title)
}

func TestInvestmentCreateWithoutLists(t *testing.T) {
	r := newStoreRouter(newTestDB(t))

	body := map[string]interface{}{
		"title": "Vineyard Plot", "category": "Agriculture", "location": "Douro", "country": "Portugal",
		"structure": "SPV", "author": "FractionaX", "chain": "Core", "stage": "Open", "yields": "6%",
		"period": "3y", "claim": "Harvest", "frequency": "Yearly", "contract": poolAddress,
		"content": "Terraced vines",
	}
	w, env := do(r, http.MethodPost, "/api/investments", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Successful in creating investment", env.Data.Msg)

	w, env = do(r, http.MethodGet, "/api/investments?id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []model.InvestmentModel
	require.NoError(t, json.Unmarshal(env.Data.Result, &rows))
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Keywords)
	assert.Empty(t, rows[0].Images)
	assert.Equal(t, "", rows[0].CoverImage())
}

func TestNewsletterCreate(t *testing.T) {
	r := newStoreRouter(newTestDB(t))

	w, env := do(r, http.MethodPost, "/api/newsletter", map[string]string{"name": "Ada", "email": "ada@example.com"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusCreated, env.Status)
	assert.Equal(t, "Successful in creating newsletter subscriber.", env.Data.Msg)

	var row model.NewsletterModel
	require.NoError(t, json.Unmarshal(env.Data.Result, &row))
	assert.Equal(t, "ada@example.com", row.Email)
	assert.NotZero(t, row.Id)
}

func TestMissingFieldFailsWithoutResult(t *testing.T) {
	r := newStoreRouter(newTestDB(t))

	w, env := do(r, http.MethodPost, "/api/newsletter", map[string]string{"email": "ada@example.com"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to create newsletter subscriber", env.Data.Msg)
	assert.NotContains(t, w.Body.String(), "result")
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestStoreFailureReturns500(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO "newsletter"`).WillReturnError(errors.New("connection reset"))
	mock.ExpectQuery(`SELECT \* FROM "investments"`).WillReturnError(errors.New("connection reset"))
	r := newStoreRouter(db)

	w, env := do(r, http.MethodPost, "/api/newsletter", map[string]string{"name": "Ada", "email": "ada@example.com"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, http.StatusInternalServerError, env.Status)
	assert.Equal(t, "Failed to create newsletter subscriber", env.Data.Msg)
	assert.Nil(t, env.Data.Result)

	w, env = do(r, http.MethodGet, "/api/investments", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch investments", env.Data.Msg)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestNonNumericIdFails(t *testing.T) {
	r := newStoreRouter(newTestDB(t))

	w, env := do(r, http.MethodGet, "/api/users?id=abc", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch users", env.Data.Msg)
}

func TestInterestDuplicatesAccepted(t *testing.T) {
	r := newStoreRouter(newTestDB(t))
	body := map[string]interface{}{"email": "ada@example.com", "evmWallet": poolAddress, "interestId": 1}

	for i := 0; i < 2; i++ {
		w, env := do(r, http.MethodPost, "/api/interest", body)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Successful in creating interest.", env.Data.Msg)
	}

	_, env := do(r, http.MethodGet, "/api/interest", nil)
	var rows []model.InterestModel
	require.NoError(t, json.Unmarshal(env.Data.Result, &rows))
	assert.Len(t, rows, 2)
	assert.Equal(t, "Successful in fetching interests.", env.Data.Msg)
}

type fakePool struct{}

func (fakePool) Cap(ctx context.Context) (*big.Int, error)       { return big.NewInt(100), nil }
func (fakePool) Bought(ctx context.Context) (*big.Int, error)    { return big.NewInt(30), nil }
func (fakePool) Investors(ctx context.Context) (*big.Int, error) { return big.NewInt(2), nil }
func (fakePool) Token(ctx context.Context) (common.Address, error) {
	return common.HexToAddress(poolAddress), nil
}

type fakeBuyer struct{}

func (fakeBuyer) Buy(opts *bind.TransactOpts, amount, value *big.Int) (*types.Transaction, error) {
	return types.NewTransaction(0, common.HexToAddress(poolAddress), value, 21000, big.NewInt(1), nil), nil
}

func newWorkers(t *testing.T) *ants.Pool {
	t.Helper()
	workers, err := ants.NewPool(4)
	require.NoError(t, err)
	t.Cleanup(workers.Release)
	return workers
}

func TestGetPool(t *testing.T) {
	reader := funding.NewReader(fakePool{}, newWorkers(t))
	h := NewPoolHandler(reader, config.PoolConfig{Decimals: 0, Symbol: "tCORE2"})
	r := gin.New()
	r.GET("/api/pool", h.GetPool)

	w, env := do(r, http.MethodGet, "/api/pool", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view funding.View
	require.NoError(t, json.Unmarshal(env.Data.Result, &view))
	assert.Equal(t, "Raised 30 of 100 (0% funded)", view.Summary)
	assert.Equal(t, "0x35B5…4CeD", view.TokenShort)
	assert.Equal(t, "2", view.Investors)
}

type purchaseFixture struct {
	router *gin.Engine
	userId int64
	invId  int64
}

func newPurchaseFixture(t *testing.T) purchaseFixture {
	t.Helper()
	ctx := context.Background()
	db := newTestDB(t)

	investments := logic.NewRecordLogic[model.InvestmentModel](db)
	inv := model.InvestmentModel{Title: "Harbour Loft", Minimum: "1", Maximum: "10"}
	require.NoError(t, investments.Create(ctx, &inv))

	users := logic.NewUserLogic(db)
	user := model.UserModel{Name: "Ada", Email: "ada@example.com", Approved: datatypes.JSONSlice[int64]{inv.Id}}
	require.NoError(t, users.Create(ctx, &user))

	conn, err := wallet.NewKeyedConnection(testKey, config.DefaultChainID)
	require.NoError(t, err)

	purchases := logic.NewPurchaseLogic(db)
	svc := purchase.NewService(fakeBuyer{}, conn, users, purchases, newWorkers(t), purchase.Options{
		Decimals:  18,
		ValueRate: decimal.RequireFromString("0.02"),
	})
	pool := config.PoolConfig{Decimals: 18, Symbol: "tCORE2"}
	ph := NewPurchaseHandler(svc, investments, purchases, 18)
	lh := NewListingHandler(investments, users, funding.NewReader(fakePool{}, newWorkers(t)), svc, pool)

	r := gin.New()
	r.POST("/api/purchases", ph.OpenPurchase)
	r.POST("/api/purchases/:id/submit", ph.SubmitPurchase)
	r.GET("/api/purchases/:id", ph.GetPurchase)
	r.DELETE("/api/purchases/:id", ph.ClosePurchase)
	r.GET("/api/listing/:id", lh.GetListing)
	r.GET("/api/marketplace", lh.GetMarketplace)
	return purchaseFixture{router: r, userId: user.Id, invId: inv.Id}
}

func TestPurchaseFlow(t *testing.T) {
	f := newPurchaseFixture(t)

	w, env := do(f.router, http.MethodPost, "/api/purchases", map[string]int64{"userId": f.userId + 1, "investmentId": f.invId})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, string(env.Data.Result), "Register Interest")

	w, env = do(f.router, http.MethodPost, "/api/purchases", map[string]int64{"userId": f.userId, "investmentId": f.invId})
	require.Equal(t, http.StatusCreated, w.Code)
	var opened PurchaseResponse
	require.NoError(t, json.Unmarshal(env.Data.Result, &opened))
	assert.Equal(t, purchase.StatusIdle, opened.State.Status)
	assert.Equal(t, "How much you want to invest?", opened.Dialog.Title)

	submit := "/api/purchases/" + opened.DialogId + "/submit"

	w, _ = do(f.router, http.MethodPost, submit, map[string]string{"amount": "0"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(f.router, http.MethodPost, submit, map[string]string{"amount": "50"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(f.router, http.MethodPost, submit, map[string]string{"amount": "2"})
	require.Equal(t, http.StatusAccepted, w.Code)

	var state PurchaseResponse
	require.Eventually(t, func() bool {
		_, env := do(f.router, http.MethodGet, "/api/purchases/"+opened.DialogId, nil)
		state = PurchaseResponse{}
		_ = json.Unmarshal(env.Data.Result, &state)
		return state.State.Status == purchase.StatusSucceeded && len(state.Submissions) == 1 &&
			state.Submissions[0].Status == model.PurchaseStatusSucceeded
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "Transaction successful!", state.Dialog.Title)
	assert.Equal(t, "40000000000000000", state.Submissions[0].Value)

	w, _ = do(f.router, http.MethodDelete, "/api/purchases/"+opened.DialogId, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(f.router, http.MethodGet, "/api/purchases/"+opened.DialogId, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetListing(t *testing.T) {
	f := newPurchaseFixture(t)

	w, env := do(f.router, http.MethodGet, "/api/listing/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Approved bool `json:"approved"`
		Dialog   struct {
			Trigger string `json:"trigger"`
		} `json:"dialog"`
		Pool struct {
			FundedFraction string `json:"fundedFraction"`
		} `json:"pool"`
	}
	require.NoError(t, json.Unmarshal(env.Data.Result, &detail))
	assert.False(t, detail.Approved)
	assert.Equal(t, "Register Interest", detail.Dialog.Trigger)
	assert.Equal(t, "0", detail.Pool.FundedFraction)

	_, env = do(f.router, http.MethodGet, "/api/listing/1?user=1", nil)
	require.NoError(t, json.Unmarshal(env.Data.Result, &detail))
	assert.True(t, detail.Approved)
	assert.Equal(t, "Invest", detail.Dialog.Trigger)

	w, _ = do(f.router, http.MethodGet, "/api/listing/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMarketplace(t *testing.T) {
	f := newPurchaseFixture(t)

	w, env := do(f.router, http.MethodGet, "/api/marketplace?status=rejected&view=grid", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		View           string `json:"view"`
		FiltersApplied bool   `json:"filtersApplied"`
		Page           struct {
			Total int `json:"total"`
			Page  int `json:"page"`
		} `json:"page"`
	}
	require.NoError(t, json.Unmarshal(env.Data.Result, &resp))
	assert.Equal(t, "grid", resp.View)
	assert.False(t, resp.FiltersApplied)
	assert.Equal(t, 1, resp.Page.Total)
	assert.Equal(t, 1, resp.Page.Page)

	w, _ = do(f.router, http.MethodGet, "/api/marketplace?voting=sometimes", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSitemapAndPublicConfig(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, logic.NewRecordLogic[model.InvestmentModel](db).Create(context.Background(), &model.InvestmentModel{Title: "Loft"}))

	cfg := &config.Config{
		Site:  config.SiteConfig{BaseURL: "https://fractionax.app", Routes: []string{"/", "/marketplace"}, ProjectID: "wc-project"},
		Chain: config.ChainConfig{ChainId: config.DefaultChainID, Contracts: map[string]config.ContractConfig{"pool": {Address: poolAddress}}},
		Pool:  config.PoolConfig{Contract: "pool", Symbol: "tCORE2", Decimals: 18},
	}
	h := NewSiteHandler(db, nil, cfg)
	r := gin.New()
	r.GET("/sitemap.xml", h.Sitemap)
	r.GET("/api/config/public", h.PublicConfig)
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<loc>https://fractionax.app/listing/1</loc>")
	assert.Contains(t, w.Body.String(), "<loc>https://fractionax.app/marketplace</loc>")

	_, env := do(r, http.MethodGet, "/api/config/public", nil)
	assert.Contains(t, string(env.Data.Result), "wc-project")
	assert.Contains(t, string(env.Data.Result), poolAddress)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

package category_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/frahmantamala/budget-tracker/internal/auth"
	"github.com/frahmantamala/budget-tracker/internal/category"
	categoryPostgres "github.com/frahmantamala/budget-tracker/internal/category/postgres"
	categoryDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/category"
	"github.com/frahmantamala/budget-tracker/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Category Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    category.RepositoryAPI
		service *category.Service
		handler *category.Handler
		slogger *slog.Logger
	)

	withUser := func(r *http.Request, userID int64) *http.Request {
		ctx := auth.ContextWithUser(r.Context(), &auth.User{ID: userID, Email: "test@example.com"})
		return r.WithContext(ctx)
	}

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&categoryDatamodel.SpendingCategory{})
		Expect(err).NotTo(HaveOccurred())

		repo = categoryPostgres.NewCategoryRepository(db)
		service = category.NewService(repo, slogger)
		baseHandler := &transport.BaseHandler{Logger: slogger}
		handler = category.NewHandler(baseHandler, service)
	})

	It("lists categories for the authenticated user in name order", func() {
		for _, name := range []string{"Utilities", "Entertainment"} {
			_, _, err := service.AddCategory(1, name)
			Expect(err).NotTo(HaveOccurred())
		}
		_, _, err := service.AddCategory(2, "Groceries")
		Expect(err).NotTo(HaveOccurred())

		req := withUser(httptest.NewRequest(http.MethodGet, "/categories", nil), 1)
		w := httptest.NewRecorder()

		handler.GetCategories(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var response category.CategoriesResponse
		err = json.NewDecoder(w.Body).Decode(&response)
		Expect(err).NotTo(HaveOccurred())

		Expect(response.Categories).To(HaveLen(2))
		Expect(response.Categories[0].Name).To(Equal("Entertainment"))
		Expect(response.Categories[1].Name).To(Equal("Utilities"))
	})

	It("rejects requests without an authenticated user", func() {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		w := httptest.NewRecorder()

		handler.GetCategories(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("creates a category and signals already-exists on repeat", func() {
		body := strings.NewReader(`{"name":"Groceries"}`)
		req := withUser(httptest.NewRequest(http.MethodPost, "/categories", body), 1)
		w := httptest.NewRecorder()

		handler.CreateCategory(w, req)
		Expect(w.Code).To(Equal(http.StatusCreated))

		body = strings.NewReader(`{"name":"Groceries"}`)
		req = withUser(httptest.NewRequest(http.MethodPost, "/categories", body), 1)
		w = httptest.NewRecorder()

		handler.CreateCategory(w, req)
		Expect(w.Code).To(Equal(http.StatusOK))

		var response category.CreateCategoryResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		Expect(err).NotTo(HaveOccurred())
		Expect(response.Message).To(Equal("category already exists"))

		categories, err := service.ListCategories(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(categories).To(HaveLen(1))
	})

	It("rejects an empty category name", func() {
		body := strings.NewReader(`{"name":""}`)
		req := withUser(httptest.NewRequest(http.MethodPost, "/categories", body), 1)
		w := httptest.NewRecorder()

		handler.CreateCategory(w, req)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})

package category_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/frahmantamala/finance-tracker/internal/auth"
	"github.com/frahmantamala/finance-tracker/internal/category"
	categoryPostgres "github.com/frahmantamala/finance-tracker/internal/category/postgres"
	categoryDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/category"
	"github.com/frahmantamala/finance-tracker/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Category Handler Integration", func() {
	var (
		db      *gorm.DB
		service *category.Service
		handler *category.Handler
		router  *chi.Mux
	)

	currentUser := &auth.User{ID: 1, Email: "ada@mail.com"}

	doRequest := func(method, target, body string) *httptest.ResponseRecorder {
		var reader *strings.Reader
		if body != "" {
			reader = strings.NewReader(body)
		} else {
			reader = strings.NewReader("")
		}
		req := httptest.NewRequest(method, target, reader)
		req = req.WithContext(auth.ContextWithUser(req.Context(), currentUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&categoryDatamodel.Category{})
		Expect(err).NotTo(HaveOccurred())

		repo := categoryPostgres.NewCategoryRepository(db)
		service = category.NewService(repo, slogger)
		handler = category.NewHandler(service)

		router = chi.NewRouter()
		router.Route("/categories", func(r chi.Router) {
			r.Get("/", handler.ListCategories)
			r.Post("/", handler.CreateCategory)
			r.Get("/{id}", handler.GetCategory)
			r.Put("/{id}", handler.UpdateCategory)
			r.Delete("/{id}", handler.DeleteCategory)
		})
	})

	It("should create and then list a category", func() {
		w := doRequest(http.MethodPost, "/categories", `{"name":"Salary","type":"income"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))

		w = doRequest(http.MethodGet, "/categories", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var envelope transport.PageResponse
		Expect(json.NewDecoder(w.Body).Decode(&envelope)).To(Succeed())
		Expect(envelope.Count).To(Equal(int64(1)))
		Expect(envelope.Next).To(BeNil())
		Expect(envelope.Previous).To(BeNil())
	})

	It("should reject a duplicate name with the flattened message envelope", func() {
		w := doRequest(http.MethodPost, "/categories", `{"name":"Salary","type":"income"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))

		w = doRequest(http.MethodPost, "/categories", `{"name":" salary ","type":"income"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var resp transport.MessageResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Message).To(Equal("name - Category with this name already exists."))
	})

	It("should reject an invalid type", func() {
		w := doRequest(http.MethodPost, "/categories", `{"name":"Salary","type":"transfer"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should return 404 for a missing category", func() {
		w := doRequest(http.MethodGet, "/categories/999", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should soft delete and keep the record retrievable by id", func() {
		w := doRequest(http.MethodPost, "/categories", `{"name":"Salary","type":"income"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))

		var created category.CategoryResponse
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())

		w = doRequest(http.MethodDelete, "/categories/1", "")
		Expect(w.Code).To(Equal(http.StatusNoContent))

		w = doRequest(http.MethodGet, "/categories/1", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var fetched category.CategoryResponse
		Expect(json.NewDecoder(w.Body).Decode(&fetched)).To(Succeed())
		Expect(fetched.IsActive).To(BeFalse())
	})

	It("should reject requests without an authenticated user", func() {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})
})

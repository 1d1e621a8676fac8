package rest_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOpenAPIDocument(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "OpenAPI Document Suite")
}

var _ = Describe("openapi.yml", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("is a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("documents every mounted route", func() {
		for _, path := range []string{
			"/health", "/ping",
			"/auth/register", "/auth/login", "/auth/refresh", "/auth/logout",
			"/users/me", "/users",
			"/categories",
			"/expenses", "/expenses/{id}", "/expenses/{id}/toggle",
			"/budgets", "/budgets/{id}",
			"/dashboard",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("restricts budget periods to the supported set", func() {
		schema := doc.Components.Schemas["BudgetRequest"]
		Expect(schema).NotTo(BeNil())
		period := schema.Value.Properties["time_period"]
		Expect(period.Value.Enum).To(ConsistOf("weekly", "bi-weekly", "monthly", "yearly"))
	})
})

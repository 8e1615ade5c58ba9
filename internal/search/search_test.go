package search_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/helpdeskhq/portal-core/internal/catalog"
	"github.com/helpdeskhq/portal-core/internal/search"
)

func TestSearch(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Search Suite")
}

var _ = Describe("Catalog Search", func() {
	var modules []catalog.Module

	BeforeEach(func() {
		modules = []catalog.Module{
			{
				ID:          "underwriting-module",
				Title:       "Underwriting Module",
				Description: "Policy issuing and renewals.",
				Guides: []catalog.Guide{
					{
						ID:          "create-policy",
						Title:       "Creating a New Policy",
						Description: "Step-by-step guide to issuing a new insurance policy.",
						Steps: []string{
							"Navigate to the Policies tab.",
							"Click on the New Policy button.",
							"Review the calculated premium.",
						},
					},
				},
			},
			{
				ID:          "claim-module",
				Title:       "Claim Module",
				Description: "File and review claims.",
				Guides: []catalog.Guide{
					{
						ID:          "file-claim",
						Title:       "Filing a New Claim",
						Description: "Initiate a claim request.",
						Steps:       []string{"Go to the Claims module.", "Submit the claim for review."},
					},
				},
			},
		}
	})

	It("matches module titles and descriptions with a module-typed result", func() {
		results := search.Search(modules, "underwriting")
		Expect(results).To(HaveLen(1))
		Expect(results[0].Type).To(Equal(search.ResultTypeModule))
		Expect(results[0].ModuleID).To(Equal("underwriting-module"))
		Expect(results[0].Breadcrumb).To(BeEmpty())
	})

	It("matches guides and carries the parent module title as breadcrumb", func() {
		results := search.Search(modules, "insurance")
		Expect(results).To(HaveLen(1))
		Expect(results[0].Type).To(Equal(search.ResultTypeGuide))
		Expect(results[0].GuideID).To(Equal("create-policy"))
		Expect(results[0].Breadcrumb).To(Equal("Underwriting Module"))
	})

	It("matches steps with a module > guide breadcrumb and a 1-based index", func() {
		results := search.Search(modules, "premium")
		Expect(results).To(HaveLen(1))
		Expect(results[0].Type).To(Equal(search.ResultTypeStep))
		Expect(results[0].Breadcrumb).To(Equal("Underwriting Module > Creating a New Policy"))
		Expect(results[0].StepIndex).To(Equal(3))
		Expect(results[0].StepText).To(Equal("Review the calculated premium."))
	})

	It("returns one result per granularity for the same guide, not deduplicated", func() {
		results := search.Search(modules, "claim")

		var types []search.ResultType
		for _, r := range results {
			types = append(types, r.Type)
		}
		Expect(types).To(ContainElements(search.ResultTypeModule, search.ResultTypeGuide, search.ResultTypeStep))
	})

	It("is case-insensitive", func() {
		Expect(search.Search(modules, "POLICY")).NotTo(BeEmpty())
		Expect(search.Search(modules, "policy")).To(HaveLen(len(search.Search(modules, "POLICY"))))
	})

	It("returns nothing for a blank term", func() {
		Expect(search.Search(modules, "")).To(BeNil())
		Expect(search.Search(modules, "   ")).To(BeNil())
	})

	It("returns nothing when no text matches", func() {
		Expect(search.Search(modules, "zebra")).To(BeEmpty())
	})
})

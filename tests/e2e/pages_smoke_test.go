//go:build e2e

package e2e_test

import (
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// The suite expects the server to run with the built-in site
// (pages/ and images/ of the repository root).
var siteRoot string

func init() {
	_, currentFile, _, _ := runtime.Caller(0)
	siteRoot = filepath.Join(filepath.Dir(currentFile), "..", "..")
}

func readSiteFile(name string) string {
	b, err := os.ReadFile(filepath.Join(siteRoot, name))
	gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
	return string(b)
}

var _ = ginkgo.Describe("Pages Smoke", func() {
	ginkgo.DescribeTable("known routes",
		func(target, file string, expStatus int) {
			page, err := pages.Get(suiteCtx, target)
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			gomega.Expect(page.Status).To(gomega.Equal(expStatus))
			gomega.Expect(page.ContentType).To(gomega.HavePrefix("text/html"))
			gomega.Expect(page.Body).To(gomega.Equal(readSiteFile(file)))
		},
		ginkgo.Entry("home", "/", "pages/index.html", http.StatusOK),
		ginkgo.Entry("contact", "/contact-me", "pages/contact-me.html", http.StatusOK),
		ginkgo.Entry("about", "/about", "pages/about.html", http.StatusOK),
		ginkgo.Entry("teapot", "/418", "pages/418.html", http.StatusTeapot),
	)

	ginkgo.DescribeTable("not found",
		func(target string) {
			page, err := pages.Get(suiteCtx, target)
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			gomega.Expect(page.Status).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(page.Body).To(gomega.Equal(readSiteFile("pages/404.html")))
		},
		ginkgo.Entry("unknown", "/nowhere"),
		ginkgo.Entry("wrong case", "/About"),
		ginkgo.Entry("trailing slash", "/about/"),
		ginkgo.Entry("query string", "/about?from=e2e"),
		ginkgo.Entry("page file name", "/about.html"),
	)

	ginkgo.It("serves images before routes", func() {
		page, err := pages.Get(suiteCtx, "/teapot.svg")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(page.Status).To(gomega.Equal(http.StatusOK))
		gomega.Expect(page.ContentType).To(gomega.HavePrefix("image/svg+xml"))
		gomega.Expect(page.Body).To(gomega.Equal(readSiteFile("images/teapot.svg")))
	})

	ginkgo.It("rejects other methods", func() {
		page, err := pages.Do(suiteCtx, http.MethodPost, "/about")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(page.Status).To(gomega.Equal(http.StatusMethodNotAllowed))
	})
})

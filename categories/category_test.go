package categories

import (
	"testing"

	"github.com/onsi/gomega"
)

func TestParentCategory(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	g.Expect(ParentCategory(CategoryTVHD)).To(gomega.Equal(CategoryTV))
	g.Expect(ParentCategory(CategoryMoviesUHD)).To(gomega.Equal(CategoryMovies))
	g.Expect(ParentCategory(CategoryBooksEbook)).To(gomega.Equal(CategoryBooks))
	g.Expect(ParentCategory(CategoryOtherMisc)).To(gomega.Equal(CategoryOther))
	g.Expect(ParentCategory(Category{ID: 42})).To(gomega.Equal(CategoryOther))
	g.Expect(ParentCategory(Category{ID: 6010})).To(gomega.Equal(CategoryOther))
	g.Expect(AllCategories.Subset(1000, 6000).Len()).To(gomega.Equal(0))
}

func TestCategories_Subset(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	subset := AllCategories.Subset(5040, 2000, 123456)
	g.Expect(subset.Len()).To(gomega.Equal(2))
	g.Expect(subset.ContainsCat(CategoryTVHD)).To(gomega.BeTrue())
	g.Expect(subset.ContainsCat(CategoryMovies)).To(gomega.BeTrue())
}

func TestCategories_Matches(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	wanted := AllCategories.Subset(CategoryTV.ID)
	g.Expect(wanted.Matches(CategoryTVHD)).To(gomega.BeTrue())
	g.Expect(wanted.Matches(CategoryMoviesHD)).To(gomega.BeFalse())
}

func TestCategories_ItemsAreOrdered(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	items := AllCategories.Subset(7020, 2000, 5040).Items()
	g.Expect(items).To(gomega.HaveLen(3))
	g.Expect(items[0].ID).To(gomega.Equal(2000))
	g.Expect(items[1].ID).To(gomega.Equal(5040))
	g.Expect(items[2].ID).To(gomega.Equal(7020))
}

func TestCategories_WithParents(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	cats := AllCategories.Subset(5040, 3010).WithParents()
	g.Expect(cats.ContainsCat(CategoryTV)).To(gomega.BeTrue())
	g.Expect(cats.ContainsCat(CategoryAudio)).To(gomega.BeTrue())
	g.Expect(cats.Len()).To(gomega.Equal(4))
}

func TestForGroup(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	cat, ok := ForGroup("Alt.Binaries.HDTV ")
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(cat).To(gomega.Equal(CategoryTVHD))

	_, ok = ForGroup("alt.binaries.nothing.here")
	g.Expect(ok).To(gomega.BeFalse())
}

func TestForExtension(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	cat, class := ForExtension(".epub")
	g.Expect(class).To(gomega.Equal(Direct))
	g.Expect(cat).To(gomega.Equal(CategoryBooksEbook))

	_, class = ForExtension("MKV")
	g.Expect(class).To(gomega.Equal(Video))

	_, class = ForExtension("exe")
	g.Expect(class).To(gomega.Equal(Unmapped))
}

func TestProducible_ContainsFallbackAndVideo(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	cats := Producible()
	g.Expect(cats.ContainsCat(CategoryOther)).To(gomega.BeTrue())
	for _, c := range VideoCategories {
		g.Expect(cats.ContainsCat(c)).To(gomega.BeTrue(), c.String())
	}
	for _, c := range cats {
		g.Expect(AllCategories.ContainsCat(*c)).To(gomega.BeTrue(), c.String())
	}
}

func TestLoadTable_RejectsUnknownCategory(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	_, err := loadTable([]byte("groups:\n  alt.binaries.x: 99999\n"))
	g.Expect(err).To(gomega.HaveOccurred())

	_, err = loadTable([]byte("extensions:\n  xyz: notanumber\n"))
	g.Expect(err).To(gomega.HaveOccurred())
}

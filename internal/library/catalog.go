// Package library is the curated catalog of books the app offers. Slugs are
// how the Sefaria API identifies each book; several have internal spaces,
// which is why reference parsing splits on the last space only.
package library

// Title is a book's display name in both languages.
type Title struct {
	He string
	En string
}

// Book identifies one selectable work.
type Book struct {
	Slug  string
	Title Title
}

// Shelf groups books for the library screen.
type Shelf struct {
	Title   string
	HeTitle string
	Books   []Book
}

// Torah is addressed by sequential chapter numbers, which exercises the
// chapter-jump path of the table of contents.
var Torah = []Book{
	{Slug: "Genesis", Title: Title{He: "בראשית", En: "Genesis"}},
	{Slug: "Exodus", Title: Title{He: "שמות", En: "Exodus"}},
	{Slug: "Leviticus", Title: Title{He: "ויקרא", En: "Leviticus"}},
	{Slug: "Numbers", Title: Title{He: "במדבר", En: "Numbers"}},
	{Slug: "Deuteronomy", Title: Title{He: "דברים", En: "Deuteronomy"}},
}

// Bavli lists the tractates of the Babylonian Talmud in traditional order.
var Bavli = []Book{
	{Slug: "Berakhot", Title: Title{He: "ברכות", En: "Berakhot"}},
	// Seder Moed
	{Slug: "Shabbat", Title: Title{He: "שבת", En: "Shabbat"}},
	{Slug: "Eruvin", Title: Title{He: "עירובין", En: "Eruvin"}},
	{Slug: "Pesachim", Title: Title{He: "פסחים", En: "Pesachim"}},
	{Slug: "Yoma", Title: Title{He: "יומא", En: "Yoma"}},
	{Slug: "Sukkah", Title: Title{He: "סוכה", En: "Sukkah"}},
	{Slug: "Beitza", Title: Title{He: "ביצה", En: "Beitza"}},
	{Slug: "Rosh Hashanah", Title: Title{He: "ראש השנה", En: "Rosh Hashana"}},
	{Slug: "Taanit", Title: Title{He: "תענית", En: "Ta'anit"}},
	{Slug: "Megillah", Title: Title{He: "מגילה", En: "Megillah"}},
	{Slug: "Moed Katan", Title: Title{He: "מועד קטן", En: "Mo'ed Katan"}},
	{Slug: "Chagigah", Title: Title{He: "חגיגה", En: "Chagigah"}},
	// Seder Nashim
	{Slug: "Yevamot", Title: Title{He: "יבמות", En: "Yevamot"}},
	{Slug: "Ketubot", Title: Title{He: "כתובות", En: "Ketubot"}},
	{Slug: "Nedarim", Title: Title{He: "נדרים", En: "Nedarim"}},
	{Slug: "Nazir", Title: Title{He: "נזיר", En: "Nazir"}},
	{Slug: "Sotah", Title: Title{He: "סוטה", En: "Sotah"}},
	{Slug: "Gittin", Title: Title{He: "גיטין", En: "Gittin"}},
	{Slug: "Kiddushin", Title: Title{He: "קידושין", En: "Kiddushin"}},
	// Seder Nezikin
	{Slug: "Bava Kamma", Title: Title{He: "בבא קמא", En: "Bava Kamma"}},
	{Slug: "Bava Metzia", Title: Title{He: "בבא מציעא", En: "Bava Metzia"}},
	{Slug: "Bava Batra", Title: Title{He: "בבא בתרא", En: "Bava Batra"}},
	{Slug: "Sanhedrin", Title: Title{He: "סנהדרין", En: "Sanhedrin"}},
	{Slug: "Makkot", Title: Title{He: "מכות", En: "Makkot"}},
	{Slug: "Shevuot", Title: Title{He: "שבועות", En: "Shevuot"}},
	{Slug: "Avodah Zarah", Title: Title{He: "עבודה זרה", En: "Avodah Zarah"}},
	{Slug: "Horayot", Title: Title{He: "הוריות", En: "Horayot"}},
	// Seder Kodashim
	{Slug: "Zevachim", Title: Title{He: "זבחים", En: "Zevachim"}},
	{Slug: "Menachot", Title: Title{He: "מנחות", En: "Menachot"}},
	{Slug: "Chullin", Title: Title{He: "חולין", En: "Chullin"}},
	{Slug: "Bekhorot", Title: Title{He: "בכורות", En: "Bekhorot"}},
	{Slug: "Arakhin", Title: Title{He: "ערכין", En: "Arakhin"}},
	{Slug: "Temurah", Title: Title{He: "תמורה", En: "Temurah"}},
	{Slug: "Keritot", Title: Title{He: "כריתות", En: "Keritot"}},
	{Slug: "Meilah", Title: Title{He: "מעילה", En: "Meilah"}},
	{Slug: "Tamid", Title: Title{He: "תמיד", En: "Tamid"}},
	// Seder Tahorot
	{Slug: "Niddah", Title: Title{He: "נידה", En: "Niddah"}},
}

// FullIndex is the shelf layout of the library screen.
func FullIndex() []Shelf {
	return []Shelf{
		{Title: "Torah", HeTitle: "תורה", Books: Torah},
		{Title: "Talmud Bavli", HeTitle: "תלמוד בבלי", Books: Bavli},
	}
}

// Find returns the catalog entry for a slug. Books opened from history may
// predate catalog changes, so a miss still yields a usable Book with the
// slug as its English title.
func Find(slug string) Book {
	for _, shelf := range FullIndex() {
		for _, book := range shelf.Books {
			if book.Slug == slug {
				return book
			}
		}
	}
	return Book{Slug: slug, Title: Title{En: slug}}
}

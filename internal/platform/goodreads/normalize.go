package goodreads

import "regexp"

// Author is a book contributor as listed by GoodReads.
type Author struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// SimilarBook is the reduced record kept for entries of a book's
// similar_books list.
type SimilarBook struct {
	Authors         []Author `json:"authors"`
	AverageRating   string   `json:"average_rating"`
	ISBN            string   `json:"isbn"`
	ID              string   `json:"id"`
	NumPages        string   `json:"num_pages"`
	Title           string   `json:"title"`
	PublicationYear string   `json:"publication_year"`
}

// BookSummary is the flat shape returned for a single book.
type BookSummary struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	ISBN             string        `json:"isbn"`
	ImageURL         string        `json:"image_url"`
	SmallImageURL    string        `json:"small_image_url"`
	PublicationYear  string        `json:"publication_year"`
	PublicationMonth string        `json:"publication_month"`
	PublicationDay   string        `json:"publication_day"`
	Publisher        string        `json:"publisher"`
	Description      string        `json:"description"`
	AverageRating    string        `json:"average_rating"`
	RatingsCount     string        `json:"ratings_count"`
	NumPages         string        `json:"num_pages"`
	URL              string        `json:"url"`
	Authors          []Author      `json:"authors"`
	SimilarBooks     []SimilarBook `json:"similar_books"`
}

// SearchResultSummary is the flat shape returned for one search hit.
type SearchResultSummary struct {
	Author        string `json:"author"`
	AverageRating string `json:"average_rating"`
	BookID        string `json:"book_id"`
	ImageURL      string `json:"image_url"`
	PubDay        string `json:"pub_day"`
	PubMonth      string `json:"pub_month"`
	PubYear       string `json:"pub_year"`
	SmallImageURL string `json:"small_image_url"`
	Title         string `json:"title"`
	Ratings       string `json:"ratings"`
	ResultID      string `json:"result_id"`
}

var (
	periodBeforeTag = regexp.MustCompile(`\.<[^>]*>`)
	markupTag       = regexp.MustCompile(`<[^>]*>`)
)

// StripDescription turns GoodReads' HTML description into plain text. A
// period directly followed by a tag becomes a period and two spaces, then
// every remaining tag is removed. The first pass has to run before the
// second one.
func StripDescription(s string) string {
	s = periodBeforeTag.ReplaceAllLiteralString(s, ".  ")
	return markupTag.ReplaceAllLiteralString(s, "")
}

// NormalizeBookDetail flattens the book node of a "show" response. Absent
// fields at any depth come back as "" or an empty list.
func NormalizeBookDetail(book Node) BookSummary {
	if book == nil {
		book = Node{}
	}
	return BookSummary{
		ID:               book.joinText("id", ""),
		Title:            book.joinText("title", ""),
		ISBN:             book.joinText("isbn", ""),
		ImageURL:         book.joinText("image_url", ""),
		SmallImageURL:    book.joinText("small_image_url", ""),
		PublicationYear:  book.joinText("publication_year", ""),
		PublicationMonth: book.joinText("publication_month", ""),
		PublicationDay:   book.joinText("publication_day", ""),
		Publisher:        book.joinText("publisher", ", "),
		Description:      StripDescription(book.joinText("description", "")),
		AverageRating:    book.joinText("average_rating", ""),
		RatingsCount:     book.joinText("ratings_count", ""),
		NumPages:         book.joinText("num_pages", ""),
		URL:              book.joinText("url", ""),
		Authors:          normalizeAuthors(book),
		SimilarBooks:     normalizeSimilarBooks(book),
	}
}

func normalizeAuthors(n Node) []Author {
	entries := n.Child("authors")["author"]
	authors := make([]Author, 0, len(entries))
	for _, entry := range entries {
		author := asNode(entry)
		authors = append(authors, Author{
			Name: author.Text("name"),
			Role: author.Text("role"),
		})
	}
	return authors
}

func normalizeSimilarBooks(n Node) []SimilarBook {
	entries := n.Child("similar_books")["book"]
	books := make([]SimilarBook, 0, len(entries))
	for _, entry := range entries {
		similar := asNode(entry)
		books = append(books, SimilarBook{
			Authors:         normalizeAuthors(similar),
			AverageRating:   similar.Text("average_rating"),
			ISBN:            similar.Text("isbn"),
			ID:              similar.Text("id"),
			NumPages:        similar.Text("num_pages"),
			Title:           similar.Text("title"),
			PublicationYear: similar.Text("publication_year"),
		})
	}
	return books
}

type leafShape int

const (
	plainLeaf leafShape = iota
	attributedLeaf
)

// searchField declares where one SearchResultSummary field lives inside a
// work entry and which leaf shape carries it.
type searchField struct {
	parents []string
	leaf    string
	shape   leafShape
	set     func(*SearchResultSummary, string)
}

var searchFields = []searchField{
	{[]string{"best_book", "author"}, "name", plainLeaf, func(s *SearchResultSummary, v string) { s.Author = v }},
	{nil, "average_rating", plainLeaf, func(s *SearchResultSummary, v string) { s.AverageRating = v }},
	{[]string{"best_book"}, "id", attributedLeaf, func(s *SearchResultSummary, v string) { s.BookID = v }},
	{[]string{"best_book"}, "image_url", plainLeaf, func(s *SearchResultSummary, v string) { s.ImageURL = v }},
	{nil, "original_publication_day", attributedLeaf, func(s *SearchResultSummary, v string) { s.PubDay = v }},
	{nil, "original_publication_month", attributedLeaf, func(s *SearchResultSummary, v string) { s.PubMonth = v }},
	{nil, "original_publication_year", attributedLeaf, func(s *SearchResultSummary, v string) { s.PubYear = v }},
	{[]string{"best_book"}, "small_image_url", plainLeaf, func(s *SearchResultSummary, v string) { s.SmallImageURL = v }},
	{[]string{"best_book"}, "title", plainLeaf, func(s *SearchResultSummary, v string) { s.Title = v }},
	{nil, "ratings_count", attributedLeaf, func(s *SearchResultSummary, v string) { s.Ratings = v }},
	{nil, "id", attributedLeaf, func(s *SearchResultSummary, v string) { s.ResultID = v }},
}

func (f searchField) extract(work Node) string {
	parent := work.Descend(f.parents...)
	if f.shape == attributedLeaf {
		return parent.AttrText(f.leaf)
	}
	return parent.Text(f.leaf)
}

// NormalizeSearchResults flattens the work entries of a search response.
func NormalizeSearchResults(works []Value) []SearchResultSummary {
	results := make([]SearchResultSummary, 0, len(works))
	for _, entry := range works {
		work := asNode(entry)
		var summary SearchResultSummary
		for _, field := range searchFields {
			field.set(&summary, field.extract(work))
		}
		results = append(results, summary)
	}
	return results
}

func asNode(v Value) Node {
	if n, ok := v.(Node); ok && n != nil {
		return n
	}
	return Node{}
}

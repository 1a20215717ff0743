package goodreads

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const showBookXML = `<?xml version="1.0" encoding="UTF-8"?>
<GoodreadsResponse>
  <Request>
    <authentication>true</authentication>
    <method><![CDATA[book_show]]></method>
  </Request>
  <book>
    <id>50</id>
    <title><![CDATA[Hatchet (Brian's Saga, #1)]]></title>
    <isbn><![CDATA[0689840926]]></isbn>
    <publisher>Atheneum Books</publisher>
    <description><![CDATA[Thirteen-year-old Brian is alone.<br /><br />He has only a hatchet.]]></description>
    <ratings_count><![CDATA[221043]]></ratings_count>
    <work>
      <id type="integer">1158125</id>
    </work>
    <authors>
      <author>
        <id>18</id>
        <name>Gary Paulsen</name>
        <role></role>
      </author>
      <author>
        <id>99</id>
        <name>Someone Else</name>
        <role>Illustrator</role>
      </author>
    </authors>
    <similar_books>
      <book>
        <id>123</id>
        <title>Brian's Winter</title>
        <publication_year>1996</publication_year>
        <authors>
          <author>
            <name>Gary Paulsen</name>
          </author>
        </authors>
      </book>
    </similar_books>
  </book>
</GoodreadsResponse>`

const searchXML = `<?xml version="1.0" encoding="UTF-8"?>
<GoodreadsResponse>
  <search>
    <query><![CDATA[hatchet]]></query>
    <total-results>2</total-results>
    <results>
      <work>
        <id type="integer">1158125</id>
        <books_count type="integer">122</books_count>
        <ratings_count type="integer">221043</ratings_count>
        <original_publication_year type="integer">1986</original_publication_year>
        <original_publication_month type="integer">9</original_publication_month>
        <original_publication_day type="integer" nil="true"/>
        <average_rating>3.72</average_rating>
        <best_book type="Book">
          <id type="integer">50</id>
          <title>Hatchet (Brian's Saga, #1)</title>
          <author>
            <id type="integer">18</id>
            <name>Gary Paulsen</name>
          </author>
          <image_url>https://images.example/m/50.jpg</image_url>
          <small_image_url>https://images.example/s/50.jpg</small_image_url>
        </best_book>
      </work>
      <work>
        <id type="integer">7</id>
        <average_rating>4.00</average_rating>
      </work>
    </results>
  </search>
</GoodreadsResponse>`

func TestParseXML_Shapes(t *testing.T) {
	doc, err := ParseXML(strings.NewReader(showBookXML))
	require.NoError(t, err)

	root := doc.Child("GoodreadsResponse")
	require.NotEmpty(t, root)

	book := root.Child("book")
	assert.Equal(t, Scalar("50"), book.First("id"))
	assert.Equal(t, "Hatchet (Brian's Saga, #1)", book.Text("title"))

	workID, ok := book.Child("work").First("id").(Attributed)
	require.True(t, ok)
	assert.Equal(t, "1158125", workID.Value)
	assert.Equal(t, "integer", workID.Attributes["type"])

	authors := book.Child("authors").Nodes("author")
	require.Len(t, authors, 2)
	assert.Equal(t, "Someone Else", authors[1].Text("name"))
}

func TestParseXML_ElementWithChildrenDropsAttributes(t *testing.T) {
	doc, err := ParseXML(strings.NewReader(searchXML))
	require.NoError(t, err)

	bestBook := doc.Descend("GoodreadsResponse", "search", "results").Nodes("work")[0].First("best_book")
	node, ok := bestBook.(Node)
	require.True(t, ok)
	_, hasType := node["type"]
	assert.False(t, hasType)
}

func TestParseXML_Errors(t *testing.T) {
	_, err := ParseXML(strings.NewReader(`<GoodreadsResponse key=>`))
	assert.Error(t, err)

	_, err = ParseXML(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseXML_ThenNormalizeBook(t *testing.T) {
	doc, err := ParseXML(strings.NewReader(showBookXML))
	require.NoError(t, err)

	got := NormalizeBookDetail(doc.Descend("GoodreadsResponse", "book"))
	assert.Equal(t, "50", got.ID)
	assert.Equal(t, "Atheneum Books", got.Publisher)
	assert.Equal(t, "221043", got.RatingsCount)
	assert.Equal(t, "Thirteen-year-old Brian is alone.  He has only a hatchet.", got.Description)
	assert.Equal(t, []Author{
		{Name: "Gary Paulsen", Role: ""},
		{Name: "Someone Else", Role: "Illustrator"},
	}, got.Authors)
	require.Len(t, got.SimilarBooks, 1)
	assert.Equal(t, "Brian's Winter", got.SimilarBooks[0].Title)
	assert.Equal(t, "1996", got.SimilarBooks[0].PublicationYear)
	assert.Equal(t, []Author{{Name: "Gary Paulsen"}}, got.SimilarBooks[0].Authors)
}

func TestParseXML_ThenNormalizeSearch(t *testing.T) {
	doc, err := ParseXML(strings.NewReader(searchXML))
	require.NoError(t, err)

	works := doc.Descend("GoodreadsResponse", "search", "results")["work"]
	got := NormalizeSearchResults(works)
	require.Len(t, got, 2)

	assert.Equal(t, SearchResultSummary{
		Author:        "Gary Paulsen",
		AverageRating: "3.72",
		BookID:        "50",
		ImageURL:      "https://images.example/m/50.jpg",
		PubDay:        "",
		PubMonth:      "9",
		PubYear:       "1986",
		SmallImageURL: "https://images.example/s/50.jpg",
		Title:         "Hatchet (Brian's Saga, #1)",
		Ratings:       "221043",
		ResultID:      "1158125",
	}, got[0])
	assert.Equal(t, SearchResultSummary{AverageRating: "4.00", ResultID: "7"}, got[1])
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omelnyk/taleshelf/internal/entities"
	"github.com/omelnyk/taleshelf/internal/identity"
	"github.com/omelnyk/taleshelf/internal/pagination"
)

// defaultPages is the page count assigned on update when the pages field
// is not supplied. Deliberately a fixed value, not the previous one.
const defaultPages = 10

// BookStore defines the store operations for book records.
type BookStore interface {
	Count() (int64, error)
	List(offset, limit int) ([]entities.Book, error)
	GetByID(id string) (*entities.Book, error)
	Create(book *entities.Book) error
	Update(book *entities.Book) error
	ReplaceCategories(book *entities.Book, cats []entities.Category) error
	Delete(id string) error
}

// AuthorStore defines the author operations the book handlers need.
type AuthorStore interface {
	Create(name string) (*entities.Author, error)
	GetOrCreateByName(name string) (*entities.Author, error)
}

// CategoryStore defines the category operations the book handlers need.
type CategoryStore interface {
	FindByNames(names []string) ([]entities.Category, error)
	GetOrCreateByName(name string) (*entities.Category, error)
}

type BooksController struct {
	store      BookStore
	authors    AuthorStore
	categories CategoryStore
	sessions   *SessionManager
}

func NewBooksController(store BookStore, authors AuthorStore, categories CategoryStore, sessions *SessionManager) *BooksController {
	return &BooksController{
		store:      store,
		authors:    authors,
		categories: categories,
		sessions:   sessions,
	}
}

// List renders one page of books with author and categories resolved.
// GET /books?page=1&limit=10
func (bc *BooksController) List(c *gin.Context) {
	params := pagination.FromQuery(c)

	total, err := bc.store.Count()
	if err != nil {
		respondInternalError(c, err, "count books")
		return
	}
	page := pagination.Paginate(total, params.Page, params.PerPage)

	books, err := bc.store.List(page.Offset, page.PerPage)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	c.HTML(http.StatusOK, "books", gin.H{
		"Books":       books,
		"CurrentPage": page.CurrentPage,
		"TotalPages":  page.TotalPages,
		"Flash":       bc.popFlash(c),
		"CSRFField":   csrfTemplateField(c),
	})
}

// GetByID renders a single book with its references resolved.
// GET /books/:id
func (bc *BooksController) GetByID(c *gin.Context) {
	book, err := bc.store.GetByID(c.Param("id"))
	if errors.Is(err, entities.ErrNotFound) {
		respondNotFound(c, "Book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}

	c.HTML(http.StatusOK, "book", gin.H{
		"Book":      book,
		"Flash":     bc.popFlash(c),
		"CSRFField": csrfTemplateField(c),
	})
}

// Create persists a new book and redirects to it. Title, author, and
// pages are required. When the author value is not a valid reference it
// is treated as a name and a new author record is created for it.
// POST /books
func (bc *BooksController) Create(c *gin.Context) {
	title := c.PostForm("title")
	author, authorSupplied := c.GetPostForm("author")
	pages, pagesSupplied := postFormInt(c, "pages")
	if title == "" || !authorSupplied || author == "" || !pagesSupplied {
		respondBadRequest(c, "Title, author, and pages are required fields")
		return
	}

	authorID := author
	if !identity.IsValid(author) {
		created, err := bc.authors.Create(author)
		if err != nil {
			respondInternalError(c, err, "create author")
			return
		}
		authorID = created.ID
	}

	book := &entities.Book{
		Title:    title,
		Pages:    pages,
		AuthorID: authorID,
	}
	if err := bc.store.Create(book); err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	bc.flash(c, "Book created")
	c.Redirect(http.StatusFound, "/books/"+book.ID)
}

// Update overwrites a book. Title is taken as submitted; the author value
// is used directly when it is a valid reference and otherwise resolved by
// find-or-create on the name; pages falls back to a fixed default when
// not supplied. Categories are replaced wholesale: names in categories[]
// are matched against existing records (non-matches dropped), then every
// newCategories[] entry is find-or-created and appended.
// PUT /books/:id
func (bc *BooksController) Update(c *gin.Context) {
	book, err := bc.store.GetByID(c.Param("id"))
	if errors.Is(err, entities.ErrNotFound) {
		respondNotFound(c, "Book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book for update")
		return
	}

	book.Title = c.PostForm("title")

	author := c.PostForm("author")
	if identity.IsValid(author) {
		book.AuthorID = author
	} else {
		resolved, err := bc.authors.GetOrCreateByName(author)
		if err != nil {
			respondInternalError(c, err, "resolve author")
			return
		}
		book.AuthorID = resolved.ID
	}

	if pages, supplied := postFormInt(c, "pages"); supplied {
		book.Pages = pages
	} else {
		book.Pages = defaultPages
	}

	var cats []entities.Category
	if names := postFormArray(c, "categories"); len(names) > 0 {
		cats, err = bc.categories.FindByNames(names)
		if err != nil {
			respondInternalError(c, err, "resolve categories")
			return
		}
	}
	for _, name := range postFormArray(c, "newCategories") {
		cat, err := bc.categories.GetOrCreateByName(name)
		if err != nil {
			respondInternalError(c, err, "create category")
			return
		}
		cats = append(cats, *cat)
	}

	if err := bc.store.Update(book); err != nil {
		respondInternalError(c, err, "update book")
		return
	}
	if err := bc.store.ReplaceCategories(book, cats); err != nil {
		respondInternalError(c, err, "replace categories")
		return
	}

	// Re-read so the rendered view shows resolved references.
	book, err = bc.store.GetByID(book.ID)
	if err != nil {
		respondInternalError(c, err, "reload book")
		return
	}

	c.HTML(http.StatusOK, "book", gin.H{
		"Book":      book,
		"Flash":     "",
		"CSRFField": csrfTemplateField(c),
	})
}

// Delete removes a book unconditionally and redirects to the list.
// DELETE /books/:id
func (bc *BooksController) Delete(c *gin.Context) {
	if err := bc.store.Delete(c.Param("id")); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}

	bc.flash(c, "Book deleted")
	c.Redirect(http.StatusFound, "/books")
}

func (bc *BooksController) flash(c *gin.Context, message string) {
	if bc.sessions != nil {
		bc.sessions.Flash(c.Request, message)
	}
}

func (bc *BooksController) popFlash(c *gin.Context) string {
	if bc.sessions == nil {
		return ""
	}
	return bc.sessions.PopFlash(c.Request)
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omelnyk/taleshelf/internal/entities"
	"github.com/omelnyk/taleshelf/internal/pagination"
)

// FairytaleStore defines the store operations for fairytale records.
// Implemented by both the database-backed and the in-memory repository.
type FairytaleStore interface {
	Count() (int64, error)
	List(offset, limit int) ([]entities.Fairytale, error)
	GetByID(id string) (*entities.Fairytale, error)
	Create(tale *entities.Fairytale) error
	Update(tale *entities.Fairytale) error
	Delete(id string) error
}

type FairytalesController struct {
	store    FairytaleStore
	sessions *SessionManager
}

func NewFairytalesController(store FairytaleStore, sessions *SessionManager) *FairytalesController {
	return &FairytalesController{store: store, sessions: sessions}
}

// List renders one page of fairytales.
// GET /fairytales?page=1&limit=10
func (fc *FairytalesController) List(c *gin.Context) {
	params := pagination.FromQuery(c)

	total, err := fc.store.Count()
	if err != nil {
		respondInternalError(c, err, "count fairytales")
		return
	}
	page := pagination.Paginate(total, params.Page, params.PerPage)

	tales, err := fc.store.List(page.Offset, page.PerPage)
	if err != nil {
		respondInternalError(c, err, "list fairytales")
		return
	}

	c.HTML(http.StatusOK, "fairytales", gin.H{
		"Fairytales":  tales,
		"CurrentPage": page.CurrentPage,
		"TotalPages":  page.TotalPages,
		"Flash":       fc.popFlash(c),
		"CSRFField":   csrfTemplateField(c),
	})
}

// GetByID renders a single fairytale.
// GET /fairytales/:id
func (fc *FairytalesController) GetByID(c *gin.Context) {
	tale, err := fc.store.GetByID(c.Param("id"))
	if errors.Is(err, entities.ErrNotFound) {
		respondNotFound(c, "Fairytale")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get fairytale")
		return
	}

	c.HTML(http.StatusOK, "fairytale", gin.H{
		"Fairytale": tale,
		"Flash":     fc.popFlash(c),
		"CSRFField": csrfTemplateField(c),
	})
}

// Create persists a new fairytale from a form submission and redirects to
// it. Title and rating are required; description defaults to empty.
// POST /fairytales
func (fc *FairytalesController) Create(c *gin.Context) {
	title := c.PostForm("title")
	rating, ratingSupplied := postFormFloat(c, "rating")
	if title == "" || !ratingSupplied {
		respondBadRequest(c, "Title and rating are required fields")
		return
	}

	tale := &entities.Fairytale{
		Title:       title,
		Rating:      rating,
		Description: c.PostForm("description"),
	}
	if err := fc.store.Create(tale); err != nil {
		respondInternalError(c, err, "create fairytale")
		return
	}

	fc.flash(c, "Fairytale created")
	c.Redirect(http.StatusFound, "/fairytales/"+tale.ID)
}

// Update overwrites a fairytale's fields. A field that is absent from the
// request, or present with an empty or zero value, keeps its previous
// value.
// PUT /fairytales/:id
func (fc *FairytalesController) Update(c *gin.Context) {
	tale, err := fc.store.GetByID(c.Param("id"))
	if errors.Is(err, entities.ErrNotFound) {
		respondNotFound(c, "Fairytale")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get fairytale for update")
		return
	}

	if title := c.PostForm("title"); title != "" {
		tale.Title = title
	}
	if rating, supplied := postFormFloat(c, "rating"); supplied {
		tale.Rating = rating
	}
	if description := c.PostForm("description"); description != "" {
		tale.Description = description
	}

	if err := fc.store.Update(tale); err != nil {
		respondInternalError(c, err, "update fairytale")
		return
	}

	c.HTML(http.StatusOK, "fairytale", gin.H{
		"Fairytale": tale,
		"Flash":     "",
		"CSRFField": csrfTemplateField(c),
	})
}

// Delete removes a fairytale and redirects to the list. The in-memory
// store reports a missing record as not found; the persisted store
// deletes unconditionally.
// DELETE /fairytales/:id
func (fc *FairytalesController) Delete(c *gin.Context) {
	err := fc.store.Delete(c.Param("id"))
	if errors.Is(err, entities.ErrNotFound) {
		respondNotFound(c, "Fairytale")
		return
	}
	if err != nil {
		respondInternalError(c, err, "delete fairytale")
		return
	}

	fc.flash(c, "Fairytale deleted")
	c.Redirect(http.StatusFound, "/fairytales")
}

func (fc *FairytalesController) flash(c *gin.Context, message string) {
	if fc.sessions != nil {
		fc.sessions.Flash(c.Request, message)
	}
}

func (fc *FairytalesController) popFlash(c *gin.Context) string {
	if fc.sessions == nil {
		return ""
	}
	return fc.sessions.PopFlash(c.Request)
}

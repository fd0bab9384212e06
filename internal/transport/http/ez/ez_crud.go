package ez

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	resp "marketplace-api/internal/transport/http/response"
)

// Crud registra endpoints CRUD de um modelo escopado pelo dono autenticado
// (endereços e cartões de um comprador). IDs são uint com auto-incremento;
// o campo dono vem do userId do token.
type CrudHooks[T any] struct {
	BeforeCreate func(c *gin.Context, m *T) error
	BeforeUpdate func(c *gin.Context, m *T) error
	ScopeList    func(c *gin.Context, q *gorm.DB) *gorm.DB
	AfterGet     func(c *gin.Context, m *T)
}

type CrudConfig[T any] struct {
	DB    *gorm.DB
	Group *gin.RouterGroup // grupo já autenticado
	Path  string
	New   func() *T

	Hooks CrudHooks[T]

	AllowCreate bool
	AllowList   bool
	AllowGet    bool
	AllowUpdate bool
	AllowDelete bool

	IDField    string // default "ID"
	OwnerField string // default "CompradorID"

	// Ordenação da listagem; vazio ordena por id.
	OrderBy string
}

func (c *CrudConfig[T]) idField() string {
	if c.IDField != "" {
		return c.IDField
	}
	return "ID"
}

func (c *CrudConfig[T]) ownerField() string {
	if c.OwnerField != "" {
		return c.OwnerField
	}
	return "CompradorID"
}

func uintFieldPtr(obj any, name string) (*uint, bool) {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Ptr {
		return nil, false
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return nil, false
	}
	f := v.FieldByName(name)
	if !f.IsValid() || f.Kind() != reflect.Uint || !f.CanSet() {
		return nil, false
	}
	return f.Addr().Interface().(*uint), true
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}

// toSnake segue a convenção de coluna do gorm: sequências maiúsculas
// ("ID", "CEP") viram um bloco só.
func toSnake(s string) string {
	rs := []rune(s)
	var b strings.Builder
	for i, r := range rs {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(rs[i-1]) || (i+1 < len(rs) && unicode.IsLower(rs[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func ownerFromCtx(c *gin.Context) (uint, bool) {
	uid := c.GetString("userId")
	if uid == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(uid, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

func Crud[T any](cfg CrudConfig[T]) {
	if !cfg.AllowCreate && !cfg.AllowGet && !cfg.AllowList && !cfg.AllowUpdate && !cfg.AllowDelete {
		cfg.AllowCreate, cfg.AllowList, cfg.AllowGet, cfg.AllowUpdate, cfg.AllowDelete = true, true, true, true, true
	}

	idName := cfg.idField()
	ownerName := cfg.ownerField()
	ownerCol := toSnake(ownerName)
	idCol := toSnake(idName)

	// Create
	if cfg.AllowCreate {
		cfg.Group.POST(cfg.Path, func(c *gin.Context) {
			m := cfg.New()
			if err := c.ShouldBindJSON(m); err != nil {
				c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
				return
			}
			owner, ok := ownerFromCtx(c)
			if !ok {
				c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "unauthorized"))
				return
			}
			if p, found := uintFieldPtr(m, ownerName); found {
				*p = owner
			} else {
				c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "owner field not found"))
				return
			}
			if p, found := uintFieldPtr(m, idName); found {
				*p = 0 // deixa o banco atribuir
			}

			if cfg.Hooks.BeforeCreate != nil {
				if err := cfg.Hooks.BeforeCreate(c, m); err != nil {
					c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
					return
				}
			}
			if err := cfg.DB.WithContext(c).Create(m).Error; err != nil {
				c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
				return
			}
			if cfg.Hooks.AfterGet != nil {
				cfg.Hooks.AfterGet(c, m)
			}
			c.JSON(http.StatusOK, resp.OK(m))
		})
	}

	// List (do dono)
	if cfg.AllowList {
		cfg.Group.GET(cfg.Path, func(c *gin.Context) {
			owner, ok := ownerFromCtx(c)
			if !ok {
				c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "unauthorized"))
				return
			}
			page := atoiDefault(c.Query("page"), 1)
			size := atoiDefault(c.Query("size"), 20)
			if size <= 0 || size > 100 {
				size = 20
			}
			offset := (page - 1) * size

			q := cfg.DB.WithContext(c).Model(cfg.New()).Where(ownerCol+" = ?", owner)
			if cfg.Hooks.ScopeList != nil {
				q = cfg.Hooks.ScopeList(c, q)
			}
			order := cfg.OrderBy
			if order == "" {
				order = idCol
			}

			var total int64
			if err := q.Count(&total).Error; err != nil {
				c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, err.Error()))
				return
			}
			var items []T
			if err := q.Order(order).Limit(size).Offset(offset).Find(&items).Error; err != nil {
				c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, err.Error()))
				return
			}
			c.JSON(http.StatusOK, resp.OK(gin.H{"total": total, "items": items}))
		})
	}

	// Get
	if cfg.AllowGet {
		cfg.Group.GET(cfg.Path+"/:id", func(c *gin.Context) {
			owner, ok := ownerFromCtx(c)
			if !ok {
				c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "unauthorized"))
				return
			}
			m := cfg.New()
			err := cfg.DB.WithContext(c).
				Where(idCol+" = ? AND "+ownerCol+" = ?", c.Param("id"), owner).
				First(m).Error
			if err != nil {
				c.JSON(http.StatusOK, resp.Error(resp.CodeNotFound, "not found"))
				return
			}
			if cfg.Hooks.AfterGet != nil {
				cfg.Hooks.AfterGet(c, m)
			}
			c.JSON(http.StatusOK, resp.OK(m))
		})
	}

	// Update
	if cfg.AllowUpdate {
		cfg.Group.PUT(cfg.Path+"/:id", func(c *gin.Context) {
			owner, ok := ownerFromCtx(c)
			if !ok {
				c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "unauthorized"))
				return
			}
			existing := cfg.New()
			err := cfg.DB.WithContext(c).
				Where(idCol+" = ? AND "+ownerCol+" = ?", c.Param("id"), owner).
				First(existing).Error
			if err != nil {
				c.JSON(http.StatusOK, resp.Error(resp.CodeNotFound, "not found"))
				return
			}
			m := cfg.New()
			if err := c.ShouldBindJSON(m); err != nil {
				c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
				return
			}
			// chave e dono não mudam
			if p, found := uintFieldPtr(m, idName); found {
				if q, f2 := uintFieldPtr(existing, idName); f2 {
					*p = *q
				}
			}
			if p, found := uintFieldPtr(m, ownerName); found {
				*p = owner
			}
			if cfg.Hooks.BeforeUpdate != nil {
				if err := cfg.Hooks.BeforeUpdate(c, m); err != nil {
					c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
					return
				}
			}
			if err := cfg.DB.WithContext(c).Save(m).Error; err != nil {
				c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
				return
			}
			c.JSON(http.StatusOK, resp.OK(m))
		})
	}

	// Delete
	if cfg.AllowDelete {
		cfg.Group.DELETE(cfg.Path+"/:id", func(c *gin.Context) {
			owner, ok := ownerFromCtx(c)
			if !ok {
				c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "unauthorized"))
				return
			}
			res := cfg.DB.WithContext(c).
				Where(idCol+" = ? AND "+ownerCol+" = ?", c.Param("id"), owner).
				Delete(cfg.New())
			if res.Error != nil {
				c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, res.Error.Error()))
				return
			}
			if res.RowsAffected == 0 {
				c.JSON(http.StatusOK, resp.Error(resp.CodeNotFound, "not found"))
				return
			}
			c.JSON(http.StatusOK, resp.OK(gin.H{"id": c.Param("id")}))
		})
	}
}

package diff

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"

	"csvdiff/core/config"
	"csvdiff/core/database"
	"csvdiff/core/logger"
	"csvdiff/core/reconcile"
	"csvdiff/core/report"
	"csvdiff/core/source"
	"csvdiff/core/storage"
	"csvdiff/core/tabular"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the diff routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/diff")
	group.Post("/", h.HandleUpload)
	group.Post("/sources", h.HandleSources)
	app.Get("/inspect", h.HandleInspect)
}

// HandleUpload compares two uploaded CSV files.
// @Summary Compare uploaded snapshots
// @Description Compares the target columns of two CSV files keyed by a key column. Unset fields use the server defaults.
// @Tags diff
// @Accept multipart/form-data
// @Produce json,plain
// @Param previous formData file true "Previous snapshot"
// @Param current formData file true "Current snapshot"
// @Param mode formData string false "by-column or by-key"
// @Param key formData string false "Key column"
// @Param columns formData string false "Comma-separated target columns"
// @Param format query string false "json (default) or text"
// @Success 200 {object} report.Document "Report"
// @Failure 400 {object} map[string]string "Invalid request or CSV"
// @Failure 422 {object} map[string]string "Missing key or target column"
// @Router /diff [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	req := Request{
		Mode:          c.FormValue("mode"),
		KeyColumn:     c.FormValue("key"),
		TargetColumns: c.FormValue("columns"),
		Format:        responseFormat(c.Query("format"), ""),
	}
	settings, err := h.service.Settings(req)
	if err != nil {
		return h.fail(c, l, err)
	}
	format, err := h.service.format(req)
	if err != nil {
		return h.fail(c, l, err)
	}

	prev, err := readUpload(c, "previous")
	if err != nil {
		return h.fail(c, l, err)
	}
	curr, err := readUpload(c, "current")
	if err != nil {
		return h.fail(c, l, err)
	}

	out, err := h.service.Compare(prev, curr, settings)
	if err != nil {
		return h.fail(c, l, err)
	}
	out.Format = format
	return h.send(c, l, out)
}

// HandleSources compares snapshots stored in object storage or the database.
// @Summary Compare stored snapshots
// @Description Loads both snapshots from s3:// or db:// locations, compares them and optionally stores the report at an s3:// output.
// @Tags diff
// @Accept json
// @Produce json,plain
// @Param request body Request true "Locations and settings"
// @Param format query string false "json (default) or text; overrides the body format"
// @Success 200 {object} report.Document "Report"
// @Failure 400 {object} map[string]string "Invalid request or CSV"
// @Failure 404 {object} map[string]string "Snapshot not found"
// @Failure 422 {object} map[string]string "Missing key or target column"
// @Router /diff/sources [post]
func (h *Handler) HandleSources(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, l, errors.Join(config.ErrInvalidArgument, err))
	}
	req.Format = responseFormat(c.Query("format"), req.Format)
	if err := h.service.RequireRemote(req.Previous, req.Current, req.Output); err != nil {
		return h.fail(c, l, err)
	}

	out, err := h.service.Run(c.UserContext(), req)
	if err != nil {
		return h.fail(c, l, err)
	}
	return h.send(c, l, out)
}

// HandleInspect describes a stored snapshot.
// @Summary Inspect a snapshot
// @Description Reports header, row count, duplicate keys and rows without a key for one s3:// or db:// snapshot.
// @Tags diff
// @Produce json
// @Param source query string true "Snapshot location"
// @Param key query string false "Key column (defaults to server setting)"
// @Success 200 {object} Inspection "Inspection"
// @Failure 400 {object} map[string]string "Invalid request or CSV"
// @Failure 422 {object} map[string]string "Missing key column"
// @Router /inspect [get]
func (h *Handler) HandleInspect(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	raw := c.Query("source")
	if err := h.service.RequireRemote(raw); err != nil {
		return h.fail(c, l, err)
	}
	info, err := h.service.Inspect(c.UserContext(), raw, c.Query("key"))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(info)
}

func (h *Handler) send(c *fiber.Ctx, l *zap.Logger, out *Outcome) error {
	var buf bytes.Buffer
	if err := h.service.Render(&buf, out); err != nil {
		return h.fail(c, l, err)
	}
	c.Set(fiber.HeaderContentType, ContentType(out.Format))
	c.Set("X-Run-ID", out.RunID)
	return c.Send(buf.Bytes())
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error("Diff request failed", zap.Error(err))
	} else {
		l.Warn("Diff request rejected", zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// responseFormat picks the HTTP report format: the query parameter, then the
// request body, then JSON. The report.format setting only applies to the CLI.
func responseFormat(query, body string) string {
	switch {
	case query != "":
		return query
	case body != "":
		return body
	default:
		return report.FormatJSON
	}
}

// StatusFor maps an error to the HTTP status returned to clients.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, reconcile.ErrMissingKeyColumn), errors.Is(err, reconcile.ErrMissingColumn):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, config.ErrInvalidArgument),
		errors.Is(err, config.ErrInvalidMode),
		errors.Is(err, tabular.ErrParse),
		errors.Is(err, source.ErrInvalidLocator),
		errors.Is(err, source.ErrUnsupportedOutput),
		errors.Is(err, database.ErrInvalidTable):
		return fiber.StatusBadRequest
	case errors.Is(err, os.ErrNotExist), errors.Is(err, storage.ErrBucketNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func readUpload(c *fiber.Ctx, field string) (*reconcile.Dataset, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, errors.Join(config.ErrInvalidArgument, errors.New("missing file field "+field))
	}
	return readFile(fh)
}

func readFile(fh *multipart.FileHeader) (*reconcile.Dataset, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tabular.Read(f, tabular.WithName(fh.Filename))
}

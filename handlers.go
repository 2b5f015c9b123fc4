package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bitbucket.org/mmdatafocus/tradedocs_backend/config"
	"bitbucket.org/mmdatafocus/tradedocs_backend/engine"
	"bitbucket.org/mmdatafocus/tradedocs_backend/models"
	"bitbucket.org/mmdatafocus/tradedocs_backend/models/reports"
	"bitbucket.org/mmdatafocus/tradedocs_backend/utils"
)

type autofillRequest struct {
	DocumentType string            `json:"document_type" binding:"required"`
	Reference    string            `json:"reference" binding:"required"`
	Values       map[string]string `json:"values"`
}

type validateDocumentRequest struct {
	DocumentType string            `json:"document_type" binding:"required"`
	Values       map[string]string `json:"values"`
}

type validateFieldRequest struct {
	DocumentType string `json:"document_type" binding:"required"`
	FieldKey     string `json:"field_key" binding:"required"`
	Value        string `json:"value"`
}

type draftRequest struct {
	DocumentType string            `json:"document_type" binding:"required"`
	Reference    string            `json:"reference"`
	Values       map[string]string `json:"values"`
}

type draftUpdateRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}

func documentsHandler(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles := eng.Registry().All()
		out := make([]gin.H, 0, len(profiles))
		for _, p := range profiles {
			out = append(out, gin.H{"type": p.Type, "name": p.Name})
		}
		c.JSON(http.StatusOK, gin.H{"documents": out})
	}
}

func documentFieldsHandler(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := eng.Registry().Get(c.Param("type"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": utils.ErrorUnknownDocumentType.Error()})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// autofillHandler runs the end-to-end resolution: locate, aggregate,
// resolve. A reference with no matching shipment is a 200 with found=false;
// the UI turns that into an informational toast, not an error state.
func autofillHandler(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req autofillRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, span := tracer.Start(c.Request.Context(), "engine.autofill")
		defer span.End()

		ds, err := models.LoadDataset(ctx)
		if err != nil {
			config.LogError(config.GetLogger(), "handlers.go", "autofillHandler", "LoadDataset", nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load shipment data"})
			return
		}

		result, err := eng.Autofill(req.DocumentType, req.Reference, req.Values, ds)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if !result.Found {
			c.JSON(http.StatusOK, gin.H{
				"found":   false,
				"message": "reference not found",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"found":   true,
			"fields":  result.Report.Values,
			"values":  engine.ApplyReport(req.Values, result.Report),
			"changed": result.Report.Changed,
			"filled":  result.Report.Filled,
		})
	}
}

func validateDocumentHandler(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validateDocumentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := eng.CheckDocument(req.DocumentType, req.Values)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		strict := config.StrictValidation()
		c.JSON(http.StatusOK, gin.H{
			"result":       result,
			"strict":       strict,
			"can_generate": result.IsValid || !strict,
		})
	}
}

func validateFieldHandler(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validateFieldRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := eng.CheckField(req.DocumentType, req.FieldKey, req.Value)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// exportDocumentHandler hands the confirmed value set to the spreadsheet
// writer. Strict mode gates this endpoint the same way it gates any other
// generation path; draft saving stays ungated.
func exportDocumentHandler(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := eng.Registry().Get(c.Param("type"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": utils.ErrorUnknownDocumentType.Error()})
			return
		}

		var req struct {
			Values map[string]string `json:"values"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if config.StrictValidation() {
			result, err := eng.CheckDocument(profile.Type, req.Values)
			if err == nil && !result.IsValid {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":  "document is not valid",
					"result": result,
				})
				return
			}
		}

		if err := reports.ExportDocumentExcel(c.Writer, profile, req.Values); err != nil {
			config.LogError(config.GetLogger(), "handlers.go", "exportDocumentHandler", "ExportDocumentExcel", nil, err)
			c.Status(http.StatusInternalServerError)
		}
	}
}

func createDraftHandler(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req draftRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if _, ok := eng.Registry().Get(req.DocumentType); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": utils.ErrorUnknownDocumentType.Error()})
			return
		}

		draft, err := models.CreateDraft(c.Request.Context(), req.DocumentType, req.Reference, req.Values)
		if err != nil {
			config.LogError(config.GetLogger(), "handlers.go", "createDraftHandler", "CreateDraft", req.DocumentType, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save draft"})
			return
		}
		c.JSON(http.StatusCreated, draft)
	}
}

func listDraftsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		drafts, err := models.ListDrafts(c.Request.Context(), c.Query("document_type"))
		if err != nil {
			config.LogError(config.GetLogger(), "handlers.go", "listDraftsHandler", "ListDrafts", nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list drafts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"drafts": drafts})
	}
}

func getDraftHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft id"})
			return
		}
		draft, err := models.GetDraft(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load draft"})
			return
		}
		values, err := draft.FieldValues()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "draft values are corrupt"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"draft": draft, "values": values})
	}
}

func updateDraftHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft id"})
			return
		}
		var req draftUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		draft, err := models.UpdateDraft(c.Request.Context(), id, req.Values)
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update draft"})
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

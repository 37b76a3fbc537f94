package server

import (
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lenshq/lens-backend/importer"
)

// ImportData ingests an uploaded CSV file. The multipart form carries the
// file plus a type field selecting the processor; invalid rows are skipped
// silently inside the processors.
func (h *Handler) ImportData(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	dataType := c.PostForm("type")
	if err != nil || dataType == "" {
		badRequest(c, "File and data type required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		internalError(c, err)
		return
	}
	defer file.Close()
	content, err := ioutil.ReadAll(file)
	if err != nil {
		internalError(c, err)
		return
	}

	_, rows := importer.ParseCSV(string(content))

	var (
		results   interface{}
		count     int
		importErr error
	)
	switch dataType {
	case importer.TypeProjects:
		cards, err := importer.ImportProjects(h.DB, rows)
		results, count, importErr = cards, len(cards), err
	case importer.TypeResearch:
		cards, err := importer.ImportResearch(h.DB, rows)
		results, count, importErr = cards, len(cards), err
	case importer.TypePeople:
		users, err := importer.ImportPeople(h.DB, rows)
		results, count, importErr = users, len(users), err
	case importer.TypeTopics:
		topics, err := importer.ImportTopics(h.DB, rows)
		results, count, importErr = topics, len(topics), err
	default:
		badRequest(c, "Invalid data type")
		return
	}
	if importErr != nil {
		internalError(c, importErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Successfully imported %d %s", count, dataType),
		"results": results,
	})
}

// DownloadTemplate serves the sample CSV for an import type.
func (h *Handler) DownloadTemplate(c *gin.Context) {
	importType := c.Query("type")

	template, err := importer.Template(importType)
	if err != nil {
		badRequest(c, "Invalid type parameter")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_template.csv"`, importType))
	c.Data(http.StatusOK, "text/csv", []byte(template))
}

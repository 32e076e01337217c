package ui

import (
	goerrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"waypoint/domain/compliance"
	"waypoint/internal/errors"
)

// handleListTests returns the registered test types and the columns each
// requires, so a client can build its upload form from the catalog.
func (s *Server) handleListTests(c *gin.Context) {
	tests := make([]gin.H, 0, len(compliance.TestTypes()))
	for _, testType := range compliance.TestTypes() {
		cols, err := compliance.RequiredColumns(testType)
		if err != nil {
			continue
		}
		tests = append(tests, gin.H{
			"test_type":        testType,
			"required_columns": cols,
		})
	}
	c.JSON(http.StatusOK, gin.H{"tests": tests})
}

// handleUpload accepts a multipart roster file and evaluates it against the
// test type named in the path.
func (s *Server) handleUpload(c *gin.Context) {
	testType := c.Param("test_type")
	if !compliance.IsKnownTestType(testType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":   errors.CodeUnknownTestType,
			"detail": "Invalid test type: " + testType,
		})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":   errors.CodeInvalidInput,
			"detail": "upload must carry a multipart 'file' field",
		})
		return
	}
	if fileHeader.Size > s.cfg.Upload.MaxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"code":   errors.CodeInvalidInput,
			"detail": "uploaded file exceeds the size limit",
		})
		return
	}

	if err := s.parseSlots.Acquire(c.Request.Context(), 1); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"code":   errors.CodeInternalError,
			"detail": "server busy, retry the upload",
		})
		return
	}
	defer s.parseSlots.Release(1)

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":   errors.CodeInvalidInput,
			"detail": "could not open uploaded file",
		})
		return
	}
	defer file.Close()

	table, err := s.reader.ReadRoster(fileHeader.Filename, file)
	if err != nil {
		s.logger.Warn("roster ingestion failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"code":   errors.CodeInvalidInput,
			"detail": "Error processing file: " + err.Error(),
		})
		return
	}

	result, err := compliance.Evaluate(testType, table)
	if err != nil {
		s.respondEvaluationError(c, testType, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"test_type": testType,
		"result":    result,
	})
}

// respondEvaluationError maps evaluator errors onto the response contract:
// validation failures are client errors, computation faults stay a structured
// 200 with the error inside the result.
func (s *Server) respondEvaluationError(c *gin.Context, testType string, err error) {
	var missingErr *compliance.MissingColumnsError
	switch {
	case goerrors.As(err, &missingErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"code":            errors.CodeMissingColumns,
			"detail":          missingErr.Error(),
			"missing_columns": missingErr.Columns,
		})
	case goerrors.Is(err, compliance.ErrUnknownTestType):
		c.JSON(http.StatusBadRequest, gin.H{
			"code":   errors.CodeUnknownTestType,
			"detail": err.Error(),
		})
	case compliance.IsExecutionError(err):
		s.logger.Warn("rule execution fault for %s: %v", testType, err)
		c.JSON(http.StatusOK, gin.H{
			"test_type": testType,
			"result":    gin.H{"error": err.Error()},
		})
	default:
		s.logger.Error("unexpected evaluation failure for %s: %v", testType, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":   errors.CodeInternalError,
			"detail": "evaluation failed",
		})
	}
}

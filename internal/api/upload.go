package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/h2non/filetype"
	"github.com/tidwall/gjson"

	apierrors "github.com/Samit-B/school-management/internal/errors"
	"github.com/Samit-B/school-management/internal/models"
)

// UploadFieldName is the multipart field the backend reads the file from
const UploadFieldName = "file"

// sniffLen is how many leading bytes filetype needs to recognise a format
const sniffLen = 262

// UploadPDF uploads a document to the PDF endpoint
func (c *Client) UploadPDF(ctx context.Context, file *models.File) (*models.UploadResult, error) {
	return c.upload(ctx, models.PathUploadPDF, file)
}

// UploadExcel uploads a spreadsheet of student records
func (c *Client) UploadExcel(ctx context.Context, file *models.File) (*models.UploadResult, error) {
	return c.upload(ctx, models.PathUploadExcel, file)
}

// UploadFile uploads a file from disk to the PDF endpoint
func (c *Client) UploadFile(ctx context.Context, path string) (*models.UploadResult, error) {
	file, err := models.FileFromPath(path)
	if err != nil {
		return nil, apierrors.NewUploadError(filepath.Base(path), err)
	}
	return c.UploadPDF(ctx, file)
}

// upload posts the file as multipart form data.
// Any non-2xx status or non-JSON body counts as a failed upload.
func (c *Client) upload(ctx context.Context, path string, file *models.File) (*models.UploadResult, error) {
	if file == nil {
		return nil, apierrors.ErrNoFile
	}

	body, contentType, err := buildMultipart(file)
	if err != nil {
		return nil, apierrors.NewUploadError(file.Name, err)
	}

	c.log.Debug().Str("file", file.Name).Int64("size", file.Size).Str("endpoint", path).Msg("uploading file")

	resp, err := c.do(ctx, fhttp.MethodPost, path, "", body, contentType)
	if err != nil {
		return nil, apierrors.NewUploadError(file.Name, err)
	}

	if !gjson.ValidBytes(resp.Body) {
		return nil, apierrors.NewUploadError(file.Name,
			apierrors.NewParseError(path, resp.StatusCode, "response is not valid JSON"))
	}

	result := &models.UploadResult{
		Message:    gjson.GetBytes(resp.Body, PathUploadMessage).String(),
		Text:       gjson.GetBytes(resp.Body, PathUploadText).String(),
		Error:      gjson.GetBytes(resp.Body, PathUploadError).String(),
		StatusCode: resp.StatusCode,
	}
	if result.Error == "" {
		result.Error = gjson.GetBytes(resp.Body, PathDetail).String()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := result.Error
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return result, apierrors.NewUploadError(file.Name, apierrors.NewAPIError(resp.StatusCode, path, msg))
	}

	return result, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// buildMultipart writes the file under the "file" field with a sniffed content type
func buildMultipart(file *models.File) ([]byte, string, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		UploadFieldName, quoteEscaper.Replace(file.Name)))
	header.Set("Content-Type", DetectContentType(file.Name, data))

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("failed to write file data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish form: %w", err)
	}

	return body.Bytes(), writer.FormDataContentType(), nil
}

// DetectContentType sniffs the content first and falls back to the extension
func DetectContentType(name string, data []byte) string {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if kind, err := filetype.Match(head); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	if byExt := mime.TypeByExtension(filepath.Ext(name)); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}

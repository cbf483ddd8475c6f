package main

import (
	"fmt"
	"io"
	"mime"
	"net/http"
)

// extractForm поля формы /extract-gemini
type extractForm struct {
	hasImage  bool // есть часть image с параметром filename
	filename  string
	image     []byte
	prompt    string
	hasPrompt bool
}

// readExtractForm читает multipart тело по частям.
// r.ParseMultipartForm тут не подходит: часть с filename="" он кладет в
// обычные значения формы, и пустой файл нельзя отличить от текстового поля.
func readExtractForm(r *http.Request) (*extractForm, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, err
	}

	form := &extractForm{}
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch part.FormName() {
		case "image":
			filename, isFile := partFilename(part.Header.Get("Content-Disposition"))
			if !isFile || form.hasImage {
				break
			}
			data, err := io.ReadAll(part)
			if err != nil {
				return nil, fmt.Errorf("read image part: %w", err)
			}
			form.hasImage = true
			form.filename = filename
			form.image = data
		case "prompt":
			if form.hasPrompt {
				break
			}
			data, err := io.ReadAll(part)
			if err != nil {
				return nil, fmt.Errorf("read prompt part: %w", err)
			}
			form.hasPrompt = true
			form.prompt = string(data)
		}

		part.Close()
	}

	return form, nil
}

// partFilename возвращает filename из Content-Disposition и признак того,
// что параметр вообще присутствует (filename="" тоже считается файлом)
func partFilename(disposition string) (string, bool) {
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return "", false
	}
	filename, ok := params["filename"]
	return filename, ok
}

// promptOrDefault возвращает промпт из формы без изменений (даже пустой)
// или промпт по умолчанию, если поля prompt в форме нет
func (f *extractForm) promptOrDefault() string {
	if !f.hasPrompt {
		return defaultPrompt
	}
	return f.prompt
}

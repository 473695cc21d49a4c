package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lshigami/ShambaQuest/internal/dto"
	"github.com/lshigami/ShambaQuest/internal/model"
	"github.com/lshigami/ShambaQuest/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// Import sheets use these columns, in order, with a header row:
// question, correct_answer, difficulty, category, xp_reward.
const importColumns = 5

type QuestionImportService interface {
	ImportQuestions(ctx context.Context, r io.Reader, filename string) (*dto.ImportResultDTO, error)
}

type questionImportService struct {
	repo repository.QuestionRepository
}

func NewQuestionImportService(repo repository.QuestionRepository) QuestionImportService {
	return &questionImportService{repo: repo}
}

func (s *questionImportService) ImportQuestions(ctx context.Context, r io.Reader, filename string) (*dto.ImportResultDTO, error) {
	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		rows, err = readCSVRows(r)
	case ".xlsx":
		rows, err = readExcelRows(r)
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q, expected .xlsx or .csv", ErrInvalidInput, filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}

	result := &dto.ImportResultDTO{}
	var questions []model.Question
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if isBlankRow(row) {
			continue
		}
		result.TotalProcessed++

		question, err := questionFromRow(row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		questions = append(questions, question)
	}

	if err := s.repo.CreateBatch(ctx, questions); err != nil {
		log.Error().Err(err).Int("questions", len(questions)).Msg("ImportQuestions: batch insert failed")
		return nil, fmt.Errorf("save imported questions: %w", err)
	}
	result.Created = len(questions)

	log.Info().Str("file", filename).Int("created", result.Created).Int("skipped", result.Skipped).Msg("ImportQuestions: done")
	return result, nil
}

func readExcelRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open Excel file: %v", ErrInvalidInput, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidInput)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %v", ErrInvalidInput, sheets[0], err)
	}
	return rows, nil
}

func readCSVRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse CSV: %v", ErrInvalidInput, err)
	}
	return rows, nil
}

func questionFromRow(row []string) (model.Question, error) {
	if len(row) < importColumns {
		return model.Question{}, fmt.Errorf("expected %d columns, got %d", importColumns, len(row))
	}
	reward, err := strconv.Atoi(strings.TrimSpace(row[4]))
	if err != nil {
		return model.Question{}, fmt.Errorf("xp_reward %q is not a number", row[4])
	}
	req := dto.QuestionCreateDTO{
		Question:      strings.TrimSpace(row[0]),
		CorrectAnswer: strings.TrimSpace(row[1]),
		Difficulty:    strings.ToLower(strings.TrimSpace(row[2])),
		Category:      strings.TrimSpace(row[3]),
		XPReward:      reward,
	}
	if req.Question == "" || req.CorrectAnswer == "" {
		return model.Question{}, errors.New("question and correct_answer are required")
	}
	return questionFromDTO(req)
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

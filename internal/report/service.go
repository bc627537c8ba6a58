package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/signintech/gopdf"
	"go.uber.org/zap"

	"healthcare-chatbot/internal/consultation"
)

type TelegramClient interface {
	SendMessage(chatID int64, text string) error
	SendDocument(chatID int64, fileData []byte, fileName string) error
}

// Service renders finished summary sheets as PDFs and delivers them to a
// configured clinician chat.
type Service struct {
	tgClient        TelegramClient
	clinicianChatID int64
	logger          *zap.Logger
}

func NewService(tg TelegramClient, clinicianChatID int64, logger *zap.Logger) *Service {
	return &Service{
		tgClient:        tg,
		clinicianChatID: clinicianChatID,
		logger:          logger,
	}
}

func (s *Service) SendSummarySheet(ctx context.Context, sheet consultation.SummarySheet) error {
	if s.clinicianChatID == 0 {
		return nil
	}

	s.logger.Info("generating summary sheet PDF", zap.Int64("user_id", sheet.UserID))
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	// DejaVuSans covers the Telugu range used in localized summaries.
	fontPaths := []string{
		"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return fmt.Errorf("failed to load font for PDF, ensure ttf-dejavu is installed: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return err
	}
	pdf.Cell(nil, "Symptom Intake Summary")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return err
	}
	pdf.Cell(nil, fmt.Sprintf("Date: %s", time.Now().Format("02.01.2006 15:04")))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Patient ID: %d", sheet.UserID))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Aggregate severity: %s", sheet.Severity))
	pdf.Br(25)

	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return err
	}
	pdf.Cell(nil, "Reported symptoms:")
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return err
	}
	writeWrapped(&pdf, sheet.Symptoms)
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return err
	}
	pdf.Cell(nil, "Summary:")
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return err
	}
	writeWrapped(&pdf, sheet.Summary)

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fileName := fmt.Sprintf("summary_%d_%s.pdf", sheet.UserID, time.Now().Format("20060102_150405"))
	if err := s.tgClient.SendDocument(s.clinicianChatID, buf.Bytes(), fileName); err != nil {
		s.logger.Error("send clinician document", zap.Error(err))
		return err
	}
	s.logger.Info("summary sheet delivered", zap.Int64("chat_id", s.clinicianChatID))
	return nil
}

func writeWrapped(pdf *gopdf.GoPdf, text string) {
	lines, _ := pdf.SplitText(text, 500)
	for _, l := range lines {
		pdf.Cell(nil, l)
		pdf.Br(12)
	}
}

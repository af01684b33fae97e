package helpers

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	tb "gopkg.in/tucnak/telebot.v2"
)

type LoggerSettings struct {
	File           string
	Level          string
	TelegramOutput bool
	TelegramToken  string
	TelegramChatId string
}

type FileLogger struct {
	mu             sync.Mutex
	logger         *log.Logger
	file           *os.File
	telegramOutput bool
	telegramToken  string
	telegramChatId string
}

func NewFileLogger(output io.Writer) *FileLogger {
	plainFormatter := new(PlainFormatter)
	plainFormatter.TimestampFormat = "2006-01-02 15:04:05"
	plainFormatter.LevelDesc = []string{"PANIC", "FATAL", "ERROR", "WARN ", "INFO ", "DEBUG", "TRACE"}

	logger := log.New()
	logger.SetOutput(output)
	logger.SetFormatter(plainFormatter)
	logger.SetLevel(log.InfoLevel)

	return &FileLogger{logger: logger}
}

// Logger writes to stderr until Configure points it somewhere else.
var Logger = NewFileLogger(os.Stderr)

// Configure redirects output to settings.File (stderr when empty), sets the level
// and enables Telegram mirroring of Info lines.
func (l *FileLogger) Configure(settings LoggerSettings) error {
	if settings.TelegramOutput {
		if settings.TelegramToken == "" {
			return fmt.Errorf("telegramOutput set to true but telegramToken parameter not found")
		}
		if settings.TelegramChatId == "" {
			return fmt.Errorf("telegramOutput set to true but telegramChatId parameter not found")
		}
	}

	level := log.InfoLevel
	if settings.Level != "" {
		parsed, err := log.ParseLevel(settings.Level)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}

	var output io.Writer = os.Stderr
	var file *os.File
	if settings.File != "" {
		f, err := os.OpenFile(settings.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("error opening log file: %w", err)
		}
		output = f
		file = f
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
	}
	l.file = file
	l.logger.SetOutput(output)
	l.logger.SetLevel(level)
	l.telegramOutput = settings.TelegramOutput
	l.telegramToken = settings.TelegramToken
	l.telegramChatId = settings.TelegramChatId
	return nil
}

func (l *FileLogger) SetOutput(output io.Writer) {
	l.logger.SetOutput(output)
}

func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.logger.SetOutput(os.Stderr)
	return err
}

func (l *FileLogger) Errorln(args ...interface{}) {
	l.logger.Errorln(args...)
}

func (l *FileLogger) Fatalln(args ...interface{}) {
	l.logger.Fatalln(args...)
}

func (l *FileLogger) Warnln(args ...interface{}) {
	l.logger.Warnln(args...)
}

// Infoln lines are mirrored to Telegram when enabled.
func (l *FileLogger) Infoln(args ...interface{}) {
	l.logger.Infoln(args...)

	l.mu.Lock()
	telegramOutput, token, chatID := l.telegramOutput, l.telegramToken, l.telegramChatId
	l.mu.Unlock()
	if telegramOutput {
		message := fmt.Sprint(args...)
		go func() {
			if err := sendOnTelegramChannel(message, token, chatID); err != nil {
				l.logger.Errorln("telegram: " + err.Error())
			}
		}()
	}
}

func (l *FileLogger) Traceln(args ...interface{}) {
	l.logger.Traceln(args...)
}

func (l *FileLogger) Debugln(args ...interface{}) {
	l.logger.Debugln(args...)
}

type PlainFormatter struct {
	TimestampFormat string
	LevelDesc       []string
}

func (f PlainFormatter) Format(entry *log.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)
	level := entry.Level.String()
	if int(entry.Level) < len(f.LevelDesc) {
		level = f.LevelDesc[entry.Level]
	}
	return []byte(fmt.Sprintf("%s %s %s\n", level, timestamp, entry.Message)), nil
}

func sendOnTelegramChannel(message string, token string, chatID string) error {
	b, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return err
	}

	chat, err := b.ChatByID(chatID)
	if err != nil {
		return err
	}
	_, err = b.Send(chat, message)
	return err
}

package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
)

// Logger writes categorized, colored log lines to stdout and mirrors
// everything to a plain-text log file.
type Logger struct {
	file *os.File
}

var (
	infoColor  = color.New(color.FgCyan)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgHiBlack)
	fatalColor = color.New(color.FgRed, color.Bold)

	apiColor      = color.New(color.FgGreen)
	databaseColor = color.New(color.FgBlue)
	kafkaColor    = color.New(color.FgMagenta)
	processColor  = color.New(color.FgHiCyan)
	emailColor    = color.New(color.FgHiMagenta)
	securityColor = color.New(color.FgHiYellow)
)

func NewLogger() *Logger {
	file, err := os.OpenFile("studio-api.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file, logging to stdout only: %v\n", err)
		file = nil
	}
	return &Logger{file: file}
}

func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}

func (l *Logger) log(c *color.Color, level, category, message string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] %-5s [%s] %s", timestamp, level, category, message)
	c.Println(line)
	if l.file != nil {
		fmt.Fprintln(l.file, line)
	}
}

func (l *Logger) Info(category, message string) {
	l.log(infoColor, "INFO", category, message)
}

func (l *Logger) Warn(category, message string) {
	l.log(warnColor, "WARN", category, message)
}

func (l *Logger) Error(category, message string) {
	l.log(errorColor, "ERROR", category, message)
}

func (l *Logger) Debug(category, message string) {
	if os.Getenv("DEBUG") == "true" {
		l.log(debugColor, "DEBUG", category, message)
	}
}

func (l *Logger) Fatal(category, message string) {
	l.log(fatalColor, "FATAL", category, message)
	l.Close()
	os.Exit(1)
}

// LogAPI logs a completed HTTP request.
func (l *Logger) LogAPI(method, path, status, duration string) {
	l.log(apiColor, "INFO", "API", fmt.Sprintf("%s %s - %s (%s)", method, path, status, duration))
}

// LogDatabase logs a storage operation against a table.
func (l *Logger) LogDatabase(operation, table, message string) {
	l.log(databaseColor, "INFO", "DATABASE", fmt.Sprintf("[%s:%s] %s", operation, table, message))
}

// LogKafka logs an event-stream operation against a topic.
func (l *Logger) LogKafka(operation, topic, message string) {
	l.log(kafkaColor, "INFO", "KAFKA", fmt.Sprintf("[%s:%s] %s", operation, topic, message))
}

// LogProcess logs an application lifecycle step.
func (l *Logger) LogProcess(category, message string) {
	l.log(processColor, "INFO", category, message)
}

// LogBooking logs a booking pipeline step keyed by booking id.
func (l *Logger) LogBooking(operation string, bookingID int64, message string) {
	l.log(processColor, "INFO", "BOOKING", fmt.Sprintf("[%s:%d] %s", operation, bookingID, message))
}

// LogEmail logs a notification dispatch attempt.
func (l *Logger) LogEmail(operation, to, message string) {
	l.log(emailColor, "INFO", "EMAIL", fmt.Sprintf("[%s:%s] %s", operation, to, message))
}

// LogSecurity logs an auth or rate-limit event.
func (l *Logger) LogSecurity(operation, message string) {
	l.log(securityColor, "WARN", "SECURITY", fmt.Sprintf("[%s] %s", operation, message))
}

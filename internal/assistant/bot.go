package assistant

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/username/contact-assistant/internal/contacts"
)

// Bot answers text commands against a contact directory
type Bot struct {
	book   *contacts.Directory
	calc   contacts.Calculator
	now    func() time.Time
	logger *zap.Logger
}

// NewBot creates a new bot
func NewBot(book *contacts.Directory, calc contacts.Calculator, logger *zap.Logger) *Bot {
	return &Bot{
		book:   book,
		calc:   calc,
		now:    time.Now,
		logger: logger,
	}
}

// Handle executes a single command line and returns the reply.
// quit reports whether the session should end.
func (b *Bot) Handle(line string) (reply string, quit bool) {
	command, args, err := ParseInput(line)
	if err != nil {
		return Explain(err), false
	}

	b.logger.Debug("Handling command",
		zap.String("command", command),
		zap.Int("args", len(args)))

	switch command {
	case "close", "exit":
		return "Good bye!", true
	case "hello":
		return "How can I help you?", false
	case "add":
		reply, err = b.addContact(args)
	case "change":
		reply, err = b.changeContact(args)
	case "phone":
		reply, err = b.showPhone(args)
	case "delete":
		reply, err = b.deleteContact(args)
	case "all":
		reply = b.showAll()
	case "add-birthday":
		reply, err = b.addBirthday(args)
	case "show-birthday":
		reply, err = b.showBirthday(args)
	case "birthdays":
		reply = b.birthdays()
	default:
		return "Invalid command.", false
	}

	if err != nil {
		b.logger.Debug("Command failed",
			zap.String("command", command),
			zap.Error(err))
		return Explain(err), false
	}
	return reply, false
}

// Run reads commands from in until exit, end of input or ctx is done.
// Input is read on a separate goroutine that ends when in returns, so
// callers that cancel ctx should close in if it is not os.Stdin.
func (b *Bot) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	fmt.Fprintln(out, "Welcome to the assistant bot!")
	for {
		fmt.Fprint(out, "Enter a command: ")

		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nInterrupted. Good bye!")
			return nil

		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				fmt.Fprintln(out, "\nGood bye!")
				return nil
			}

			reply, quit := b.Handle(line)
			fmt.Fprintln(out, reply)
			if quit {
				return nil
			}
		}
	}
}

func (b *Bot) addContact(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrMissingArguments
	}
	name := args[0]

	record, ok := b.book.Find(name)
	if !ok {
		var err error
		record, err = contacts.NewRecord(name)
		if err != nil {
			return "", err
		}
		if len(args) > 1 {
			if err := record.AddPhone(args[1]); err != nil {
				return "", err
			}
		}
		b.book.AddRecord(record)
		return "Contact added.", nil
	}

	if len(args) > 1 {
		if err := record.AddPhone(args[1]); err != nil {
			return "", err
		}
	}
	return "Contact updated.", nil
}

func (b *Bot) changeContact(args []string) (string, error) {
	if len(args) < 3 {
		return "", ErrMissingArguments
	}
	record, err := b.find(args[0])
	if err != nil {
		return "", err
	}
	if err := record.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

func (b *Bot) showPhone(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrMissingArguments
	}
	record, err := b.find(args[0])
	if err != nil {
		return "", err
	}
	phones := record.Phones()
	if len(phones) == 0 {
		return "No phones saved.", nil
	}
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return strings.Join(values, "; "), nil
}

func (b *Bot) deleteContact(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrMissingArguments
	}
	if err := b.book.Delete(args[0]); err != nil {
		return "", err
	}
	return "Contact deleted.", nil
}

func (b *Bot) showAll() string {
	records := b.book.Records()
	if len(records) == 0 {
		return "No contacts saved."
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) addBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrMissingArguments
	}
	record, err := b.find(args[0])
	if err != nil {
		return "", err
	}
	if err := record.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func (b *Bot) showBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrMissingArguments
	}
	record, err := b.find(args[0])
	if err != nil {
		return "", err
	}
	birthday, ok := record.Birthday()
	if !ok {
		return "Birthday not set.", nil
	}
	return birthday.String(), nil
}

func (b *Bot) birthdays() string {
	upcoming := b.book.UpcomingBirthdaysWith(b.calc, b.now())
	if len(upcoming) == 0 {
		return "No upcoming birthdays."
	}
	lines := make([]string, len(upcoming))
	for i, c := range upcoming {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) find(name string) (*contacts.Record, error) {
	record, ok := b.book.Find(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, contacts.ErrRecordNotFound)
	}
	return record, nil
}

package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"evcontrol/internal/pkg/password"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var ErrPasswordMismatch = errors.New("passwords do not match")

// passwordReader reads one secret line; prompts go to out
type passwordReader func(prompt string) (string, error)

func NewHashPasswordCommand() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print the environment lines that enable Basic Auth on the UI",
		Long: "Reads a password twice (masked on a terminal, one line each from a pipe)\n" +
			"and prints UI_USER / UI_PASSWORD_HASH lines for the .env file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			read := stdinReader(cmd.InOrStdin(), cmd.ErrOrStderr())
			return runHashPassword(cmd.OutOrStdout(), read, user)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "UI user name to print alongside the hash")

	return cmd
}

func runHashPassword(out io.Writer, read passwordReader, user string) error {
	pass, err := read("Enter password:   ")
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	confirm, err := read("Confirm password: ")
	if err != nil {
		return fmt.Errorf("reading password confirmation: %w", err)
	}
	if pass != confirm {
		return ErrPasswordMismatch
	}

	hash, err := password.HashPassword(pass)
	if err != nil {
		return err
	}

	if user != "" {
		fmt.Fprintf(out, "UI_USER=%s\n", user)
	}
	// single quotes keep the '$' of the bcrypt hash away from shell expansion
	fmt.Fprintf(out, "UI_PASSWORD_HASH='%s'\n", hash)
	return nil
}

func stdinReader(in io.Reader, prompts io.Writer) passwordReader {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return func(prompt string) (string, error) {
			fmt.Fprint(prompts, prompt)
			b, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(prompts)
			return string(b), err
		}
	}

	reader := bufio.NewReader(in)
	return func(_ string) (string, error) {
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}

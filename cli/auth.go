package cli

import (
	"net/http"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/storefront/schema"
)

type LoginCommand struct {
	base
	Args struct {
		PhoneNumber string `positional-arg-name:"phone" description:"account phone number"`
		Password    string `positional-arg-name:"password" description:"account password"`
	} `positional-args:"yes" required:"yes"`
}

func (c *LoginCommand) Execute(_ []string) error {
	cli, err := c.app.storefront()
	if err != nil {
		return err
	}
	token, err := cli.Login(c.app.ctx, c.Args.PhoneNumber, c.Args.Password)
	if err != nil {
		return err
	}
	return c.app.print(map[string]interface{}{"authenticated": true, "expiry": token.Expiry})
}

type SignupCommand struct {
	base
	Name         string `short:"n" long:"name" description:"full name" required:"true"`
	PhoneNumber  string `short:"p" long:"phone" description:"phone number" required:"true"`
	Email        string `short:"e" long:"email" description:"email address"`
	Password     string `long:"password" description:"password" required:"true"`
	Gender       string `long:"gender" description:"gender"`
	DateOfBirth  string `long:"dob" description:"date of birth, YYYY-MM-DD"`
	ReferralCode string `long:"referral" description:"referral code"`
}

func (c *SignupCommand) Execute(_ []string) error {
	cli, err := c.app.storefront()
	if err != nil {
		return err
	}
	token, err := cli.Signup(c.app.ctx, &schema.SignupRequest{
		Name:         c.Name,
		PhoneNumber:  c.PhoneNumber,
		Email:        c.Email,
		Password:     c.Password,
		Password2:    c.Password,
		Gender:       c.Gender,
		DateOfBirth:  c.DateOfBirth,
		ReferralCode: c.ReferralCode,
	})
	if err != nil {
		return err
	}
	return c.app.print(map[string]interface{}{"registered": true, "authenticated": token != nil})
}

type LogoutCommand struct {
	base
}

func (c *LogoutCommand) Execute(_ []string) error {
	cli, err := c.app.storefront()
	if err != nil {
		return err
	}
	return cli.Logout()
}

type SessionCommand struct {
	base
}

func (c *SessionCommand) Execute(_ []string) error {
	cli, err := c.app.storefront()
	if err != nil {
		return err
	}
	session := cli.Session()
	if session == nil || session.AccessToken == "" {
		return c.app.print(map[string]interface{}{"authenticated": false})
	}
	return c.app.print(map[string]interface{}{
		"authenticated": true,
		"expiry":        session.Expiry,
		"refreshable":   session.RefreshToken != "",
	})
}

type ProfileCommand struct {
	base
}

func (c *ProfileCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	profile, err := cli.Profile(c.app.ctx)
	if err != nil {
		return err
	}
	return c.app.print(profile)
}

// RequestCommand exposes the generic authenticated call.
type RequestCommand struct {
	base
	Data string `short:"d" long:"data" description:"JSON request body, @location reads it from a local path or afs URL"`
	Args struct {
		Method string `positional-arg-name:"method"`
		Path   string `positional-arg-name:"path"`
	} `positional-args:"yes" required:"yes"`
}

func (c *RequestCommand) Execute(_ []string) error {
	cli, err := c.app.storefront()
	if err != nil {
		return err
	}
	var body interface{}
	headers := http.Header{}
	if c.Data != "" {
		data := []byte(c.Data)
		if strings.HasPrefix(c.Data, "@") {
			URL := url.Normalize(c.Data[1:], file.Scheme)
			if data, err = afs.New().DownloadWithURL(c.app.ctx, URL); err != nil {
				return err
			}
		}
		body = data
		headers.Set("Content-Type", "application/json")
	}
	resp, err := cli.Request(c.app.ctx, strings.ToUpper(c.Args.Method), c.Args.Path, body, headers)
	if err != nil {
		return err
	}
	_, err = c.app.stdout.Write(resp.Body)
	return err
}

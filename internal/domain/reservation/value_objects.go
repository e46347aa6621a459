package reservation

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Contact struct {
	name  string
	email string
	phone string
}

func NewContact(name, email, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return Contact{}, ErrMissingClientName
	}
	if !emailRegex.MatchString(email) {
		return Contact{}, ErrInvalidClientEmail
	}
	if phone == "" {
		return Contact{}, ErrMissingClientPhone
	}
	return Contact{name: name, email: email, phone: phone}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }
func (c Contact) Phone() string { return c.phone }

type Answer struct {
	Question string
	Answer   string
}

// Answers keeps the order in which the booking form asked its questions.
// It is encoded as a JSON object whose key order is that order.
type Answers []Answer

func (a Answers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(item.Question)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(item.Answer)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (a *Answers) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*a = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrInvalidAnswers
	}

	out := Answers{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return ErrInvalidAnswers
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return errors.Join(ErrInvalidAnswers, err)
		}
		out = append(out, Answer{Question: key, Answer: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*a = out
	return nil
}

// Encode returns the stored text form.
func (a Answers) Encode() (string, error) {
	b, err := a.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DecodeAnswers(s string) (Answers, error) {
	if strings.TrimSpace(s) == "" {
		return Answers{}, nil
	}
	var a Answers
	if err := a.UnmarshalJSON([]byte(s)); err != nil {
		return nil, err
	}
	if a == nil {
		a = Answers{}
	}
	return a, nil
}

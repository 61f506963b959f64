package main

import (
	"fmt"

	"github.com/akeil/gallery/internal/config"
	"github.com/akeil/gallery/pkg/events"
)

func doComplete(s *config.Settings, log events.Logger, title string) error {
	st, err := openState(s, log)
	if err != nil {
		return err
	}

	d, err := st.Complete(title)
	if err != nil {
		return err
	}

	err = st.Save()
	if err != nil {
		return err
	}

	fmt.Printf("%v %q is complete.\n", okMark, d.Title())
	return nil
}

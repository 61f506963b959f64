package main

import (
	"fmt"

	"github.com/akeil/gallery/internal/config"
	"github.com/akeil/gallery/pkg/events"
)

func doRm(s *config.Settings, log events.Logger, title string) error {
	st, err := openState(s, log)
	if err != nil {
		return err
	}

	if title == "" {
		d, ok := st.DeleteSelected()
		if !ok {
			fmt.Println("No drawing selected.")
			return nil
		}
		title = d.Title()
	} else {
		_, err = st.Remove(title)
		if err != nil {
			return err
		}
	}

	err = st.Save()
	if err != nil {
		return err
	}

	fmt.Printf("%v Deleted %q.\n", okMark, title)
	return nil
}

package main

import (
	"fmt"

	"github.com/akeil/gallery/internal/config"
	"github.com/akeil/gallery/pkg/events"
)

func doSelect(s *config.Settings, log events.Logger, title string, none bool) error {
	if none == (title != "") {
		return fmt.Errorf("give either a title or --none")
	}

	st, err := openState(s, log)
	if err != nil {
		return err
	}

	if none {
		st.ClearSelection()
	} else {
		err = st.Select(title)
		if err != nil {
			return err
		}
	}

	err = st.Save()
	if err != nil {
		return err
	}

	if none {
		fmt.Printf("%v Cleared selection.\n", okMark)
	} else {
		fmt.Printf("%v Selected %q.\n", okMark, title)
	}
	return nil
}

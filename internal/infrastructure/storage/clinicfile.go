// Package storage persists the clinic state as a single human-readable
// sectioned file: each section is a [NAME] header, a column line, then
// comma-delimited rows, with a blank line between sections.
package storage

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
	domainRepo "github.com/smthh4/cc13.1-finals-project/internal/domain/repository"
)

const timeLayout = "2006-01-02 15:04:05"

const (
	sectionPatients = "PATIENTS"
	sectionDoctors  = "DOCTORS"
	sectionRooms    = "ROOMS"
	sectionQueue    = "QUEUE"
	sectionHistory  = "HISTORY"
)

type fileStore struct {
	path string
	log  *logrus.Logger
}

// NewFileStore creates a StateStore backed by a combined sectioned file.
func NewFileStore(path string, log *logrus.Logger) domainRepo.StateStore {
	return &fileStore{path: path, log: log}
}

// Load reconstructs the clinic state from disk. A missing file yields an
// empty state; malformed rows are skipped and logged.
func (s *fileStore) Load() (*entity.ClinicState, error) {
	state := entity.NewClinicState()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("open state file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	section := ""
	skipColumns := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			skipColumns = true
			continue
		}
		if line == "" {
			continue
		}
		if skipColumns {
			skipColumns = false
			continue
		}

		s.loadRow(state, section, strings.Split(line, ","))
	}
	if err := scanner.Err(); err != nil {
		return state, fmt.Errorf("read state file: %w", err)
	}
	return state, nil
}

func (s *fileStore) loadRow(state *entity.ClinicState, section string, parts []string) {
	switch section {
	case sectionPatients:
		if len(parts) >= 2 {
			state.PatientNames[parts[0]] = parts[1]
		}

	case sectionDoctors:
		if len(parts) >= 3 {
			inClinic, _ := strconv.ParseBool(parts[2])
			state.Doctors = append(state.Doctors, entity.Doctor{
				ID:       parts[0],
				Name:     parts[1],
				InClinic: inClinic,
			})
		}

	case sectionRooms:
		if len(parts) >= 3 {
			occupied, _ := strconv.ParseBool(parts[2])
			state.Rooms = append(state.Rooms, entity.Room{
				ID:         parts[0],
				Type:       parts[1],
				IsOccupied: occupied,
			})
		}

	case sectionQueue:
		if len(parts) >= 5 {
			priority, err := strconv.Atoi(parts[3])
			if err != nil {
				s.log.Warnf("Skipping queue row with bad priority %q: %v", parts[3], err)
				return
			}
			state.Queue = append(state.Queue, entity.Patient{
				ID:       parts[0],
				Name:     parts[1],
				Concern:  parts[2],
				Priority: priority,
				DoctorID: parts[4],
			})
		}

	case sectionHistory:
		if len(parts) >= 5 {
			recordedAt, err := time.Parse(timeLayout, parts[1])
			if err != nil {
				s.log.Warnf("Skipping history row with bad timestamp %q: %v", parts[1], err)
				return
			}
			state.History[parts[0]] = append(state.History[parts[0]], entity.HistoryRecord{
				Time:       recordedAt,
				DoctorName: parts[2],
				Diagnosis:  parts[3],
				Treatment:  parts[4],
			})
		}
	}
}

// Save rewrites every section from the given state.
func (s *fileStore) Save(state *entity.ClinicState) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create state file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintf(w, "[%s]\n", sectionPatients)
	fmt.Fprintln(w, "PatientID,Name")
	for id, name := range state.PatientNames {
		fmt.Fprintf(w, "%s,%s\n", id, escapeField(name))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "[%s]\n", sectionDoctors)
	fmt.Fprintln(w, "DoctorID,Name,InClinic")
	for _, d := range state.Doctors {
		fmt.Fprintf(w, "%s,%s,%t\n", d.ID, escapeField(d.Name), d.InClinic)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "[%s]\n", sectionRooms)
	fmt.Fprintln(w, "RoomID,Type,IsOccupied")
	for _, r := range state.Rooms {
		fmt.Fprintf(w, "%s,%s,%t\n", r.ID, escapeField(r.Type), r.IsOccupied)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "[%s]\n", sectionQueue)
	fmt.Fprintln(w, "PatientID,Name,Concern,Priority,DoctorID")
	for _, p := range state.Queue {
		fmt.Fprintf(w, "%s,%s,%s,%d,%s\n",
			p.ID, escapeField(p.Name), escapeField(p.Concern), p.Priority, p.DoctorID)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "[%s]\n", sectionHistory)
	fmt.Fprintln(w, "PatientID,DateTime,Doctor,Diagnosis,Treatment")
	for id, records := range state.History {
		for _, r := range records {
			fmt.Fprintf(w, "%s,%s,%s,%s,%s\n",
				id,
				r.Time.Format(timeLayout),
				escapeField(r.DoctorName),
				escapeField(r.Diagnosis),
				escapeField(r.Treatment))
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// escapeField keeps free text from breaking the comma-delimited rows.
func escapeField(value string) string {
	return strings.ReplaceAll(value, ",", ";")
}

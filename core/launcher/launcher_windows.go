//go:build windows
// +build windows

package launcher

import (
	"errors"
	"fmt"
	"io"
	"unsafe"

	"golang.org/x/sys/windows"
)

// spawnBound creates a job object configured to kill every member when
// its last handle closes, spawns the encoded command line inside it
// with the launcher's standard handles, and waits for the child.
//
// The job handle is deliberately never closed: the launcher spawns
// exactly once and the handle disappearing with this process is what
// tears the job down. Silent breakaway stays enabled so the child can
// intentionally start detached helpers that outlive it.
func spawnBound(argv []string, encoded string, stderr io.Writer) (int, error) {
	job, err := windows.CreateJobObject(nil, nil)
	if err != nil {
		return 1, fmt.Errorf("job object creation failed: %w", err)
	}

	var info windows.JOBOBJECT_EXTENDED_LIMIT_INFORMATION
	var infoLen uint32
	err = windows.QueryInformationJobObject(job,
		windows.JobObjectExtendedLimitInformation,
		uintptr(unsafe.Pointer(&info)), uint32(unsafe.Sizeof(info)), &infoLen)
	if err != nil || infoLen != uint32(unsafe.Sizeof(info)) {
		return 1, fmt.Errorf("job information querying failed: %v", err)
	}

	info.BasicLimitInformation.LimitFlags |= windows.JOB_OBJECT_LIMIT_KILL_ON_JOB_CLOSE
	info.BasicLimitInformation.LimitFlags |= windows.JOB_OBJECT_LIMIT_SILENT_BREAKAWAY_OK
	_, err = windows.SetInformationJobObject(job,
		windows.JobObjectExtendedLimitInformation,
		uintptr(unsafe.Pointer(&info)), uint32(unsafe.Sizeof(info)))
	if err != nil {
		return 1, fmt.Errorf("job information setting failed: %w", err)
	}

	stdin, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return 1, fmt.Errorf("failed to get stdin handle: %w", err)
	}
	stdout, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return 1, fmt.Errorf("failed to get stdout handle: %w", err)
	}
	stderrHandle, err := windows.GetStdHandle(windows.STD_ERROR_HANDLE)
	if err != nil {
		return 1, fmt.Errorf("failed to get stderr handle: %w", err)
	}

	si := &windows.StartupInfo{
		Flags:     windows.STARTF_USESTDHANDLES,
		StdInput:  stdin,
		StdOutput: stdout,
		StdErr:    stderrHandle,
	}
	si.Cb = uint32(unsafe.Sizeof(*si))

	cmd, err := windows.UTF16PtrFromString(encoded)
	if err != nil {
		return 1, fmt.Errorf("invalid command line: %w", err)
	}

	var pi windows.ProcessInformation
	err = windows.CreateProcess(nil, cmd, nil, nil, true, 0, nil, nil, si, &pi)
	if err != nil {
		if errors.Is(err, windows.ERROR_FILE_NOT_FOUND) {
			fmt.Fprintf(stderr, "%s: not found\n", argv[0])
			return NotFoundExitStatus, nil
		}
		return 1, fmt.Errorf("unable to create process: %w", err)
	}

	// Attach immediately; an unattached child defeats the whole point
	// of the job.
	if err := windows.AssignProcessToJobObject(job, pi.Process); err != nil {
		return 1, fmt.Errorf("unable to assign process to job: %w", err)
	}
	windows.CloseHandle(pi.Thread)

	if _, err := windows.WaitForSingleObject(pi.Process, windows.INFINITE); err != nil {
		return 1, fmt.Errorf("failed to wait for process: %w", err)
	}

	var code uint32
	if err := windows.GetExitCodeProcess(pi.Process, &code); err != nil {
		return 1, fmt.Errorf("failed to get exit code of process: %w", err)
	}
	return int(code), nil
}

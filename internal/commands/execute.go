package commands

import "fmt"

type Result struct {
	Message  string
	Warnings []string
}

type Handlers struct {
	Add         func(AddArgs) (Result, error)
	Update      func(UpdateArgs) (Result, error)
	View        func(ViewArgs) (Result, error)
	Archive     func(ArchiveArgs) (Result, error)
	ViewArchive func(ViewArgs) (Result, error)
	Stats       func(StatsArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil || cmd.Add == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeUpdate:
		if handlers.Update == nil || cmd.Update == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Update(*cmd.Update)
	case TypeView:
		if handlers.View == nil || cmd.View == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.View(*cmd.View)
	case TypeArchive:
		if handlers.Archive == nil || cmd.Archive == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Archive(*cmd.Archive)
	case TypeViewArchive:
		if handlers.ViewArchive == nil || cmd.ViewArchive == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.ViewArchive(*cmd.ViewArchive)
	case TypeStats:
		if handlers.Stats == nil || cmd.Stats == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Stats(*cmd.Stats)
	default:
		return Result{}, &CommandError{
			Code:    ErrCodeInvalidArgument,
			Message: fmt.Sprintf("unsupported command: %s", cmd.Type),
		}
	}
}

func missingHandler(t Type) error {
	return &CommandError{
		Code:    ErrCodeHandlerMissing,
		Message: fmt.Sprintf("no handler bound for %s", t),
	}
}

package tree

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	ErrRBSetRootColor      = errors.New("rbset root color violation")
	ErrRBSetRedViolation   = errors.New("rbset red violation")
	ErrRBSetBlackViolation = errors.New("rbset black violation")
	ErrRBSetLinkViolation  = errors.New("rbset link violation")
	ErrRBSetOrderViolation = errors.New("rbset order violation")
	ErrRBSetSizeViolation  = errors.New("rbset size violation")
)

// rbset rule validation utilities.

func isRed[T any](node RBNode[T]) bool {
	return node != nil && node.Color() == Red
}

// Inorder traversal over the node views.
func foreachNode[T any](set RBSet[T], action func(node RBNode[T]) error) error {
	aux := set.Root()
	if aux == nil {
		return nil
	}

	stack := make([]RBNode[T], 0, set.Len()>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.Left() {
		stack = append(stack, aux)
	}
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		if err := action(aux); err != nil {
			return err
		}
		stack = stack[:size-1]
		for aux = aux.Right(); aux != nil; aux = aux.Left() {
			stack = append(stack, aux)
		}
	}
	return nil
}

func RootColorValidate[T any](set RBSet[T]) error {
	root := set.Root()
	if root == nil {
		return nil
	}
	if root.Color() != Black {
		return fmt.Errorf("%w: red root %v", ErrRBSetRootColor, root.Val())
	}
	if root.Parent() != nil {
		return fmt.Errorf("%w: root %v with parent", ErrRBSetRootColor, root.Val())
	}
	return nil
}

func RedViolationValidate[T any](set RBSet[T]) error {
	return foreachNode[T](set, func(node RBNode[T]) error {
		if isRed[T](node) && (isRed[T](node.Left()) || isRed[T](node.Right())) {
			return fmt.Errorf("%w: red node %v with red child", ErrRBSetRedViolation, node.Val())
		}
		return nil
	})
}

// blackHeight counts the black nodes from node down to any nil leaf,
// the nil leaf excluded.
func blackHeight[T any](node RBNode[T]) (int, error) {
	if node == nil {
		return 0, nil
	}
	l, err := blackHeight[T](node.Left())
	if err != nil {
		return 0, err
	}
	r, err := blackHeight[T](node.Right())
	if err != nil {
		return 0, err
	}
	if l != r {
		return 0, fmt.Errorf("%w: node %v black height left %d, right %d",
			ErrRBSetBlackViolation, node.Val(), l, r)
	}
	if node.Color() == Black {
		l++
	}
	return l, nil
}

func BlackViolationValidate[T any](set RBSet[T]) error {
	_, err := blackHeight[T](set.Root())
	return err
}

// BlackHeight of the root.
func BlackHeight[T any](set RBSet[T]) (int, error) {
	return blackHeight[T](set.Root())
}

func LinkValidate[T any](set RBSet[T]) error {
	return foreachNode[T](set, func(node RBNode[T]) error {
		if l := node.Left(); l != nil && l.Parent() != node {
			return fmt.Errorf("%w: left child of %v", ErrRBSetLinkViolation, node.Val())
		}
		if r := node.Right(); r != nil && r.Parent() != node {
			return fmt.Errorf("%w: right child of %v", ErrRBSetLinkViolation, node.Val())
		}
		return nil
	})
}

func OrderValidate[T any](set RBSet[T]) error {
	var (
		prev    T
		hasPrev bool
	)
	return foreachNode[T](set, func(node RBNode[T]) error {
		val := node.Val()
		if hasPrev && set.Compare(prev, val) >= 0 {
			return fmt.Errorf("%w: %v before %v", ErrRBSetOrderViolation, prev, val)
		}
		prev, hasPrev = val, true
		return nil
	})
}

func SizeValidate[T any](set RBSet[T]) error {
	count := int64(0)
	_ = foreachNode[T](set, func(RBNode[T]) error {
		count++
		return nil
	})
	if count != set.Len() {
		return fmt.Errorf("%w: %d nodes, size %d", ErrRBSetSizeViolation, count, set.Len())
	}
	return nil
}

// Validate runs all rules and combines the violations.
func Validate[T any](set RBSet[T]) error {
	return multierr.Combine(
		RootColorValidate[T](set),
		RedViolationValidate[T](set),
		BlackViolationValidate[T](set),
		LinkValidate[T](set),
		OrderValidate[T](set),
		SizeValidate[T](set),
	)
}

package models

import "fmt"

type ServiceType string

const (
	ServiceHaircutAndBeard ServiceType = "HaircutAndBeard"
	ServiceHaircutOnly     ServiceType = "HaircutOnly"
	ServiceBeardOnly       ServiceType = "BeardOnly"
)

// ServiceTypes lists every offering in display order.
var ServiceTypes = []ServiceType{
	ServiceHaircutAndBeard,
	ServiceHaircutOnly,
	ServiceBeardOnly,
}

var serviceLabels = map[ServiceType]string{
	ServiceHaircutAndBeard: "Corte e Barba",
	ServiceHaircutOnly:     "Só Corte",
	ServiceBeardOnly:       "Só Barba",
}

func (s ServiceType) Valid() bool {
	_, ok := serviceLabels[s]
	return ok
}

// Label is the pt-BR name shown to clients.
func (s ServiceType) Label() string {
	if l, ok := serviceLabels[s]; ok {
		return l
	}
	return string(s)
}

func ParseServiceType(raw string) (ServiceType, error) {
	s := ServiceType(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown service type %q", raw)
	}
	return s, nil
}

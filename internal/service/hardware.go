package service

import (
	"baking_oven/internal/hardware"
	"baking_oven/internal/oven"
)

type HardwareService struct {
	panel *hardware.Panel
}

func NewHardwareService(panel *hardware.Panel) *HardwareService {
	return &HardwareService{panel: panel}
}

func (s *HardwareService) InjectFault(heat oven.HeatType, reason string) {
	s.panel.InjectFault(heat, reason)
}

func (s *HardwareService) ClearFaults() { s.panel.ClearFaults() }

func (s *HardwareService) Status() hardware.Status { return s.panel.Snapshot() }

package handlers

import (
	"net/http"
	"time"

	"baking_oven/internal/hardware"
	"baking_oven/internal/oven"

	"github.com/gin-gonic/gin"
)

// FaultRequest is the payload of POST /api/v1/hardware/faults.
type FaultRequest struct {
	// Heat type to break. Allowed: THERMO_CIRCULATION, GRILL, HEATER
	Heat   *oven.HeatType `json:"heat" binding:"required" swaggertype:"string" example:"GRILL"`
	Reason string         `json:"reason,omitempty" example:"element open circuit"`
}

type activationView struct {
	Heat          string    `json:"heat"`
	TargetTemp    int       `json:"target_temp"`
	TimeInMinutes int       `json:"time_in_minutes"`
	At            time.Time `json:"at"`
}

type hardwareView struct {
	FanOn          bool              `json:"fan_on"`
	Activations    int               `json:"activations"`
	LastActivation *activationView   `json:"last_activation,omitempty"`
	Faults         map[string]string `json:"faults"`
}

func newHardwareView(st hardware.Status) hardwareView {
	v := hardwareView{
		FanOn:       st.FanOn,
		Activations: st.Activations,
		Faults:      make(map[string]string, len(st.Faults)),
	}
	if st.Last != nil {
		v.LastActivation = &activationView{
			Heat:          st.Last.Heat.String(),
			TargetTemp:    st.Last.Settings.TargetTemp,
			TimeInMinutes: st.Last.Settings.TimeInMinutes,
			At:            st.Last.At,
		}
	}
	for heat, reason := range st.Faults {
		v.Faults[heat.String()] = reason
	}
	return v
}

// @Summary      Hardware status
// @Tags         hardware
// @Produce      json
// @Success      200  {object}  hardwareView
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/hardware [get]
// @Security     BearerAuth
func (h *Handler) hardwareStatus(c *gin.Context) {
	c.JSON(http.StatusOK, newHardwareView(h.services.Hardware.Status()))
}

// @Summary      Inject heating fault
// @Description  Every following activation of the given heat type fails until faults are cleared
// @Tags         hardware
// @Accept       json
// @Produce      json
// @Param        body  body   FaultRequest  true  "Fault payload"
// @Success      200   {object}  hardwareView
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/hardware/faults [post]
// @Security     BearerAuth
func (h *Handler) injectFault(c *gin.Context) {
	var req FaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	h.services.Hardware.InjectFault(*req.Heat, req.Reason)
	if h.log != nil {
		h.log.Infow("hardware_fault_injected", "heat", req.Heat.String(), "reason", req.Reason, "operator_id", operatorID(c))
	}
	c.JSON(http.StatusOK, newHardwareView(h.services.Hardware.Status()))
}

// @Summary      Clear heating faults
// @Tags         hardware
// @Produce      json
// @Success      200  {object}  hardwareView
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/hardware/faults [delete]
// @Security     BearerAuth
func (h *Handler) clearFaults(c *gin.Context) {
	h.services.Hardware.ClearFaults()
	if h.log != nil {
		h.log.Infow("hardware_faults_cleared", "operator_id", operatorID(c))
	}
	c.JSON(http.StatusOK, newHardwareView(h.services.Hardware.Status()))
}
